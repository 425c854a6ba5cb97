package config

import (
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

//DeploymentModes of the node
const (
	DeploymentDevelopment = 0
	DeploymentTestNet     = 1
	DeploymentMainNet     = 2
)

/*Config - all the config options passed from the command line*/
type Config struct {
	DeploymentMode byte

	// MetricsUI - render a full-screen refreshing dashboard instead of
	// rolling log output.
	MetricsUI bool

	// RefreshInterval - how often the metrics screen redraws.
	RefreshInterval time.Duration

	MiningEnabled bool
	MiningThreads int
}

/*Configuration of the system */
var Configuration Config

/*Development - is the deployment mode development */
func Development() bool {
	return Configuration.DeploymentMode == DeploymentDevelopment
}

/*TestNet - is the deployment mode TestNet */
func TestNet() bool {
	return Configuration.DeploymentMode == DeploymentTestNet
}

//SetupDefaultConfig - setup the default config options that can be overridden via the config file
func SetupDefaultConfig() {
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.console", false)

	viper.SetDefault("metrics.ui", true)
	viper.SetDefault("metrics.refresh_time", time.Second)

	viper.SetDefault("mining.enabled", false)
	viper.SetDefault("mining.threads", 1)

	viper.SetDefault("chain.currency_units", "LTZ")
	viper.SetDefault("chain.target_spacing", 150*time.Second)
	viper.SetDefault("chain.maturity_depth", 100)
	viper.SetDefault("chain.halving_interval", 840000)
	viper.SetDefault("chain.base_subsidy", int64(1250000000))
	viper.SetDefault("chain.genesis_time", int64(1511954736))
	viper.SetDefault("chain.checkpoint.height", 1)
	viper.SetDefault("chain.checkpoint.time", int64(1511954886))
}

/*SetupConfig - setup the configuration system */
func SetupConfig() {
	viper.SetConfigName("litecoinz")
	viper.AddConfigPath("./config")
	err := viper.ReadInConfig() // Find and read the config file
	if err != nil {             // Handle errors reading the config file
		panic(errors.Wrap(err, "fatal error config file"))
	}

	Configuration.MetricsUI = viper.GetBool("metrics.ui")
	Configuration.RefreshInterval = viper.GetDuration("metrics.refresh_time")
	Configuration.MiningEnabled = viper.GetBool("mining.enabled")
	Configuration.MiningThreads = viper.GetInt("mining.threads")
}

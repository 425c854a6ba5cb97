package common

import (
	"fmt"
	"strings"
)

/*Amount - a monetary value in base units */
type Amount int64

//Coin - the number of base units in one coin
const Coin Amount = 100000000

//String - format the amount as coins, keeping at least two decimals
func (a Amount) String() string {
	abs := a
	if abs < 0 {
		abs = -abs
	}
	quotient := abs / Coin
	remainder := abs % Coin
	str := fmt.Sprintf("%d.%08d", quotient, remainder)
	str = strings.TrimRight(str, "0")
	if dot := strings.Index(str, "."); len(str)-dot-1 < 2 {
		str = str + strings.Repeat("0", 2-(len(str)-dot-1))
	}
	if a < 0 {
		return "-" + str
	}
	return str
}

package chain

import (
	"sort"
	"sync"
	"time"

	"github.com/newtl/litecoinz/core/common"
)

//Hash - the content identifier of a block
type Hash string

//medianTimeSpan - the trailing window over which a tip's median time is computed
const medianTimeSpan = 11

/*Params - the consensus constants consumed by the metrics engine. All of
them come from the chain configuration and never change at runtime. */
type Params struct {
	GenesisTime      common.Timestamp
	TargetSpacing    time.Duration
	MaturityDepth    int64
	HalvingInterval  int64
	BaseSubsidy      common.Amount
	CheckpointHeight int64
	CheckpointTime   common.Timestamp
	CurrencyUnits    string
}

type blockNode struct {
	hash   Hash
	height int64
	time   common.Timestamp
}

/*Chain - an in-memory index of every accepted block and of the current
best chain. It stands in for the node's full chain state; the metrics
engine only ever consults it through read-only queries. */
type Chain struct {
	mu     sync.RWMutex
	params Params

	// index holds every block ever accepted; active is the best chain,
	// ordered by height. A reorganization truncates active but leaves
	// the nodes in the index.
	index  map[Hash]*blockNode
	active []*blockNode

	connections int
	syncing     bool
}

/*NewChain - create a chain for the given consensus parameters. The chain
starts empty and in the initial-block-download state. */
func NewChain(params Params) *Chain {
	return &Chain{
		params:  params,
		index:   make(map[Hash]*blockNode),
		syncing: true,
	}
}

//Params - the consensus parameters of this chain
func (c *Chain) Params() Params {
	return c.params
}

/*AcceptBlock - extend the best chain with a new tip. */
func (c *Chain) AcceptBlock(hash Hash, ts common.Timestamp) {
	c.mu.Lock()
	defer c.mu.Unlock()
	bn := &blockNode{hash: hash, height: int64(len(c.active)), time: ts}
	c.index[hash] = bn
	c.active = append(c.active, bn)
	BlockAcceptanceMeter.Mark(1)
}

/*ReorgTo - roll the best chain back so the given height is the new tip.
Disconnected blocks stay in the index but are no longer on the best chain. */
func (c *Chain) ReorgTo(height int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if height < -1 {
		height = -1
	}
	if height+1 < int64(len(c.active)) {
		c.active = c.active[:height+1]
	}
}

//SetConnectionCount - update the number of connected peers
func (c *Chain) SetConnectionCount(n int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.connections = n
}

//ConnectionCount - the number of connected peers
func (c *Chain) ConnectionCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.connections
}

//SetSynced - mark the end (or resumption) of the initial block download
func (c *Chain) SetSynced(synced bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.syncing = !synced
}

//IsInitialBlockDownload - is the node still catching up with the network
func (c *Chain) IsInitialBlockDownload() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.syncing
}

//Height - the height of the best chain tip, -1 when the chain is empty
func (c *Chain) Height() int64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return int64(len(c.active)) - 1
}

//TipMedianTime - the median timestamp over the trailing window ending at the tip
func (c *Chain) TipMedianTime() common.Timestamp {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return (&View{c: c}).TipMedianTime()
}

//NetworkRate - recent block acceptance rate, in blocks per second
func (c *Chain) NetworkRate() float64 {
	return BlockAcceptanceMeter.Rate1()
}

/*View - runs the given function under the chain's read lock. Callers that
must pair chain state with their own locked state acquire their lock inside
the callback, keeping the chain-lock-first ordering. */
func (c *Chain) View(f func(v *View)) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	f(&View{c: c})
}

/*View - a read-locked handle on the chain, only valid for the duration of
the View callback. */
type View struct {
	c *Chain
}

//Height - the height of the best chain tip
func (v *View) Height() int64 {
	return int64(len(v.c.active)) - 1
}

//TipMedianTime - the median timestamp over the trailing window ending at the tip
func (v *View) TipMedianTime() common.Timestamp {
	n := len(v.c.active)
	if n == 0 {
		return v.c.params.GenesisTime
	}
	span := medianTimeSpan
	if n < span {
		span = n
	}
	times := make([]common.Timestamp, 0, span)
	for _, bn := range v.c.active[n-span:] {
		times = append(times, bn.time)
	}
	sort.Slice(times, func(i, j int) bool { return times[i] < times[j] })
	return times[len(times)/2]
}

//HeightOf - the height a block was accepted at; ok is false for unknown blocks
func (v *View) HeightOf(hash Hash) (int64, bool) {
	bn, ok := v.c.index[hash]
	if !ok {
		return 0, false
	}
	return bn.height, true
}

//Contains - is the block currently part of the best chain
func (v *View) Contains(hash Hash) bool {
	bn, ok := v.c.index[hash]
	if !ok {
		return false
	}
	return bn.height < int64(len(v.c.active)) && v.c.active[bn.height] == bn
}

//MaturityDepth - the confirmation depth at which a block subsidy matures
func (v *View) MaturityDepth() int64 {
	return v.c.params.MaturityDepth
}

//Subsidy - the block subsidy at the given height per the halving schedule
func (v *View) Subsidy(height int64) common.Amount {
	halvings := height / v.c.params.HalvingInterval
	if halvings >= 64 {
		return 0
	}
	return v.c.params.BaseSubsidy >> uint(halvings)
}

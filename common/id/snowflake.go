package id

import (
	"errors"
	"sync"

	"github.com/bwmarrin/snowflake"
)

var ErrNotInitialized = errors.New("id: generator not initialized, call Init first")

var (
	node *snowflake.Node
	once sync.Once
)

// Init initializes the Snowflake node with the given node ID.
// Only the first call has an effect.
func Init(nodeID int64) error {
	var err error
	once.Do(func() {
		node, err = snowflake.NewNode(nodeID)
	})
	return err
}

// New returns a time-ordered unique ID. It panics with ErrNotInitialized
// unless Init has succeeded.
func New() int64 {
	if node == nil {
		panic(ErrNotInitialized)
	}
	return node.Generate().Int64()
}

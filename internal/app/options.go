// Package app assembles the history synchronization service from flags.
package app

import (
	"time"

	"github.com/jessevdk/go-flags"

	"github.com/goodnatureofminers/blockinsight7000-wallet/internal/wallet/model"
	"github.com/goodnatureofminers/blockinsight7000-wallet/internal/wallet/service/historysync"
)

// Store backends.
const (
	StoreSQLite = "sqlite"
	StoreRedis  = "redis"
	StoreMemory = "memory"
)

// Options are the settings shared by the daemon and the CLI.
type Options struct {
	RPCURL            string        `long:"rpc-url" env:"WALLETSYNC_RPC_URL" description:"CometBFT RPC URL" default:"http://127.0.0.1:26657"`
	RESTURL           string        `long:"rest-url" env:"WALLETSYNC_REST_URL" description:"Cosmos REST URL" default:"http://127.0.0.1:1317"`
	RequestsPerSecond int           `long:"rps" env:"WALLETSYNC_RPS" description:"max node requests per second, 0 for unlimited" default:"20"`
	HTTPTimeout       time.Duration `long:"http-timeout" env:"WALLETSYNC_HTTP_TIMEOUT" description:"timeout of one node request" default:"10s"`

	Store       string `long:"store" env:"WALLETSYNC_STORE" description:"history store backend" choice:"sqlite" choice:"redis" choice:"memory" default:"sqlite"`
	SQLitePath  string `long:"sqlite-path" env:"WALLETSYNC_SQLITE_PATH" description:"sqlite database file" default:"walletsync.db"`
	RedisURL    string `long:"redis-url" env:"WALLETSYNC_REDIS_URL" description:"redis url" default:"redis://127.0.0.1:6379/0"`
	RedisPrefix string `long:"redis-prefix" env:"WALLETSYNC_REDIS_PREFIX" description:"redis key prefix" default:"walletsync:"`
	MaxHistory  int    `long:"max-history" env:"WALLETSYNC_MAX_HISTORY" description:"records kept per address" default:"500"`

	AddressPrefix string `long:"address-prefix" env:"WALLETSYNC_ADDRESS_PREFIX" description:"bech32 account prefix" default:"lmn"`
	BaseDenom     string `long:"base-denom" env:"WALLETSYNC_BASE_DENOM" description:"on-chain denom" default:"ulmn"`
	DisplayDenom  string `long:"display-denom" env:"WALLETSYNC_DISPLAY_DENOM" description:"display denom" default:"LMN"`
	Exponent      int32  `long:"exponent" env:"WALLETSYNC_EXPONENT" description:"decimals between base and display denom" default:"6"`

	Interval          time.Duration `long:"interval" env:"WALLETSYNC_INTERVAL" description:"heartbeat interval" default:"5s"`
	Depth             uint64        `long:"depth" env:"WALLETSYNC_DEPTH" description:"max heights per heartbeat" default:"20"`
	ForcedDepth       uint64        `long:"forced-depth" env:"WALLETSYNC_FORCED_DEPTH" description:"heights per forced rescan" default:"100"`
	LargeGapThreshold uint64        `long:"large-gap" env:"WALLETSYNC_LARGE_GAP" description:"gap after which the heartbeat jumps to the head" default:"1000"`
	GapLimit          int           `long:"gap-limit" env:"WALLETSYNC_GAP_LIMIT" description:"indexer results per gap sync" default:"50"`
	Workers           int           `long:"workers" env:"WALLETSYNC_WORKERS" description:"concurrent height scans" default:"8"`
}

// LoadOptions returns the defaults overridden by WALLETSYNC_* variables.
func LoadOptions() (Options, error) {
	var opts Options
	if _, err := flags.NewParser(&opts, flags.IgnoreUnknown).ParseArgs(nil); err != nil {
		return Options{}, err
	}
	return opts, nil
}

// Denomination returns the configured coin.
func (o Options) Denomination() model.Denomination {
	return model.Denomination{Base: o.BaseDenom, Display: o.DisplayDenom, Exponent: o.Exponent}
}

// SyncConfig returns the scanner configuration.
func (o Options) SyncConfig() historysync.Config {
	return historysync.Config{
		Depth:             o.Depth,
		ForcedDepth:       o.ForcedDepth,
		LargeGapThreshold: o.LargeGapThreshold,
		GapLimit:          o.GapLimit,
		Interval:          o.Interval,
		WorkerCount:       o.Workers,
	}
}

package engine

import (
	"time"

	"github.com/intelsdi-x/comprbench/pkg/conf"
)

var (
	// AddressFlag is the address of the engine node under test.
	AddressFlag = conf.NewStringFlag("engine_address", "Address of the engine node under test", "127.0.0.1")
	// PortFlag is the native protocol port of the engine.
	PortFlag = conf.NewIntFlag("engine_port", "Native protocol port of the engine", 9042)
	// KeyspaceFlag names the keyspace holding the benchmarked table.
	KeyspaceFlag = conf.NewStringFlag("engine_keyspace", "Keyspace of the benchmarked table", "test_ks")
	// CreateKeyspaceFlag creates the keyspace when it does not exist.
	CreateKeyspaceFlag = conf.NewBoolFlag("engine_create_keyspace", "Create the keyspace if it does not exist", false)
	// TableFlag names the benchmarked table. It is dropped and recreated for every trial.
	TableFlag = conf.NewStringFlag("engine_table", "Benchmarked table. It is dropped and recreated for every trial!", "test_struct")
	// DataDirFlag is the on-disk directory of the benchmarked keyspace.
	DataDirFlag = conf.NewStringFlag("engine_data_dir", "Data directory of the benchmarked keyspace. It is removed before every trial!", "/var/lib/scylla/data/test_ks")
	// TimeoutFlag bounds a single statement.
	TimeoutFlag = conf.NewDurationFlag("engine_timeout", "Timeout of a single statement", 10*time.Second)
	// ConnectTimeoutFlag bounds establishing connection.
	ConnectTimeoutFlag = conf.NewDurationFlag("engine_connect_timeout", "Timeout of connecting to the engine", 10*time.Second)
	// UsernameFlag for password authentication. Empty disables authentication.
	UsernameFlag = conf.NewStringFlag("engine_username", "Username for password authentication", "")
	// PasswordFlag for password authentication.
	PasswordFlag = conf.NewStringFlag("engine_password", "Password for password authentication", "")
	// FlushCommandFlag is the command flushing memtables of the table; keyspace and table are appended.
	FlushCommandFlag = conf.NewStringFlag("flush_command", "Command flushing memtables; keyspace and table are appended", "nodetool flush")
)

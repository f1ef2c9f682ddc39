// Copyright (c) 2017 Intel Corporation
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package engine talks to the storage engine under test.
package engine

import (
	"fmt"
	"time"

	"github.com/gocql/gocql"
	"github.com/intelsdi-x/comprbench/pkg/compression"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Config encodes the settings for connecting to the engine.
type Config struct {
	Address        string
	Port           int
	Keyspace       string
	CreateKeyspace bool
	Timeout        time.Duration
	ConnectTimeout time.Duration
	Username       string
	Password       string
}

// DefaultConfig applies the engine settings from the command line flags and
// environment variables.
func DefaultConfig() Config {
	return Config{
		Address:        AddressFlag.Value(),
		Port:           PortFlag.Value(),
		Keyspace:       KeyspaceFlag.Value(),
		CreateKeyspace: CreateKeyspaceFlag.Value(),
		Timeout:        TimeoutFlag.Value(),
		ConnectTimeout: ConnectTimeoutFlag.Value(),
		Username:       UsernameFlag.Value(),
		Password:       PasswordFlag.Value(),
	}
}

// Session executes statements. It is satisfied by gocql sessions through NewSession.
type Session interface {
	Exec(statement string, values ...interface{}) error
	Close()
}

type gocqlSession struct {
	session *gocql.Session
}

func (s gocqlSession) Exec(statement string, values ...interface{}) error {
	return s.session.Query(statement, values...).Exec()
}

func (s gocqlSession) Close() {
	s.session.Close()
}

// getClusterConfig prepares configuration to the engine cluster.
func getClusterConfig(config Config) *gocql.ClusterConfig {
	cluster := gocql.NewCluster(config.Address)
	cluster.Port = config.Port
	cluster.ProtoVersion = 4
	// Single node under test, every write has to land on it.
	cluster.Consistency = gocql.One
	cluster.Timeout = config.Timeout
	cluster.ConnectTimeout = config.ConnectTimeout

	if config.Username != "" && config.Password != "" {
		cluster.Authenticator = gocql.PasswordAuthenticator{
			Username: config.Username,
			Password: config.Password,
		}
	}
	return cluster
}

func createKeyspace(config Config) error {
	session, err := getClusterConfig(config).CreateSession()
	if err != nil {
		return errors.Wrap(err, "cannot create session for creating keyspace")
	}
	defer session.Close()

	query := fmt.Sprintf("CREATE KEYSPACE IF NOT EXISTS %s WITH REPLICATION = {'class': 'SimpleStrategy', 'replication_factor': 1}", config.Keyspace)
	return errors.Wrapf(session.Query(query).Exec(), "cannot create keyspace %q", config.Keyspace)
}

// NewSession connects to the keyspace given in config.
func NewSession(config Config) (Session, error) {
	if config.CreateKeyspace {
		if err := createKeyspace(config); err != nil {
			return nil, err
		}
	}

	cluster := getClusterConfig(config)
	cluster.Keyspace = config.Keyspace

	session, err := cluster.CreateSession()
	if err != nil {
		return nil, errors.Wrapf(err, "cannot connect to %s:%d/%s", config.Address, config.Port, config.Keyspace)
	}
	logrus.Debugf("Connected to %s:%d keyspace %q", config.Address, config.Port, config.Keyspace)
	return gocqlSession{session}, nil
}

// Cassandra executes the schema and data statements of a trial.
type Cassandra struct {
	session Session
}

// NewCassandra connects to the engine.
func NewCassandra(config Config) (*Cassandra, error) {
	session, err := NewSession(config)
	if err != nil {
		return nil, err
	}
	return NewCassandraWithSession(session), nil
}

// NewCassandraWithSession wraps already established session.
func NewCassandraWithSession(session Session) *Cassandra {
	return &Cassandra{session: session}
}

// DropTable drops the table if it exists.
func (c *Cassandra) DropTable(table string) error {
	return errors.Wrapf(c.session.Exec(fmt.Sprintf("DROP TABLE IF EXISTS %s", table)), "cannot drop table %q", table)
}

// CreateTable creates the benchmarked table with given compression.
func (c *Cassandra) CreateTable(table string, config compression.Config) error {
	statement := fmt.Sprintf(
		"CREATE TABLE %s (a int, b int, c text, PRIMARY KEY (a, b)) WITH compression = %s",
		table, config.CQL())
	return errors.Wrapf(c.session.Exec(statement), "cannot create table %q", table)
}

// Insert writes a single row.
func (c *Cassandra) Insert(table string, partition, clustering int, payload string) error {
	statement := fmt.Sprintf("INSERT INTO %s (a, b, c) VALUES (?, ?, ?)", table)
	return errors.Wrapf(c.session.Exec(statement, partition, clustering, payload),
		"cannot insert row (%d, %d) into %q", partition, clustering, table)
}

// Close closes the session.
func (c *Cassandra) Close() {
	c.session.Close()
}

package conf

import "time"

var (
	// MetadataCassandraAddress is the address of the Cassandra cluster which stores sweep metadata.
	// Empty value disables metadata recording.
	MetadataCassandraAddress = NewStringFlag("metadata_cassandra_addr", "Address of Cassandra DB endpoint for sweep metadata. Empty disables recording.", "")
	// MetadataCassandraPort is the native protocol port of the metadata cluster.
	MetadataCassandraPort = NewIntFlag("metadata_cassandra_port", "Port of Cassandra DB endpoint for sweep metadata", 9042)
	// MetadataCassandraKeyspace names the keyspace holding the metadata table.
	MetadataCassandraKeyspace = NewStringFlag("metadata_cassandra_keyspace", "Keyspace for sweep metadata", "bench")
	// MetadataCassandraTimeout bounds a single metadata query.
	MetadataCassandraTimeout = NewDurationFlag("metadata_cassandra_timeout", "Timeout of metadata queries", 10*time.Second)
)

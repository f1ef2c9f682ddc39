// Package compression enumerates the compression configurations of a sweep.
package compression

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

const (
	// DefaultClassPrefix is the package of the engine compressor classes.
	DefaultClassPrefix = "org.apache.cassandra.io.compress."

	// NoneName names the configuration with compression disabled.
	NoneName  = "None"
	zstdName  = "Zstd"
	zstdClass = "ZstdCompressor"

	optionCompression = "sstable_compression"
	optionLevel       = "compression_level"
	optionChunkLength = "chunk_length_in_kb"
)

// DefaultZstdLevels returns the levels swept for Zstd when no catalog file is given.
func DefaultZstdLevels() []int {
	return []int{1, 5, 9, 13, 17, 21}
}

// DefaultChunkSizes returns the chunk lengths in KB swept when none are given.
func DefaultChunkSizes() []int {
	return []int{4, 16, 64}
}

// levelless algorithms, swept in this order after None.
var fixedAlgorithms = [...]struct{ name, class string }{
	{"LZ4", "LZ4Compressor"},
	{"Snappy", "SnappyCompressor"},
	{"Deflate", "DeflateCompressor"},
}

// Config is a single compression configuration of a table.
// Its identity is the (Algorithm, Level, ChunkKB) tuple.
type Config struct {
	// Algorithm is the fully qualified compressor class. Empty disables compression.
	Algorithm string
	Level     int
	HasLevel  bool
	ChunkKB   int
}

// Options returns the table compression option map.
func (c Config) Options() map[string]string {
	options := map[string]string{
		optionCompression: c.Algorithm,
		optionChunkLength: strconv.Itoa(c.ChunkKB),
	}
	if c.HasLevel {
		options[optionLevel] = strconv.Itoa(c.Level)
	}
	return options
}

// CQL renders the option map as a CQL map literal with a fixed key order.
func (c Config) CQL() string {
	entries := []string{fmt.Sprintf("'%s': '%s'", optionCompression, c.Algorithm)}
	if c.HasLevel {
		entries = append(entries, fmt.Sprintf("'%s': '%d'", optionLevel, c.Level))
	}
	entries = append(entries, fmt.Sprintf("'%s': '%d'", optionChunkLength, c.ChunkKB))
	return "{" + strings.Join(entries, ", ") + "}"
}

// Named pairs a configuration with its display name, e.g. "Zstd 5".
type Named struct {
	Name   string
	Config Config
}

// ChunkConfigs holds every catalog configuration for one chunk length.
type ChunkConfigs struct {
	ChunkLen int
	Configs  []Named
}

// Catalog is the immutable list of algorithms swept for every chunk length.
type Catalog struct {
	classPrefix string
	zstdLevels  []int
}

// NewCatalog returns a catalog with given class prefix and Zstd levels.
// Levels are copied, deduplicated and sorted ascending.
func NewCatalog(classPrefix string, zstdLevels []int) Catalog {
	levels := append([]int{}, zstdLevels...)
	sort.Ints(levels)

	unique := levels[:0]
	for i, level := range levels {
		if i > 0 && level == levels[i-1] {
			continue
		}
		unique = append(unique, level)
	}

	return Catalog{classPrefix: classPrefix, zstdLevels: unique}
}

// DefaultCatalog returns the catalog with the default class prefix and Zstd levels.
func DefaultCatalog() Catalog {
	return NewCatalog(DefaultClassPrefix, DefaultZstdLevels())
}

// ZstdLevels returns a copy of swept Zstd levels in ascending order.
func (c Catalog) ZstdLevels() []int {
	return append([]int{}, c.zstdLevels...)
}

// Len returns number of configurations generated per chunk length.
func (c Catalog) Len() int {
	return 1 + len(fixedAlgorithms) + len(c.zstdLevels)
}

// configs returns the catalog paired with given chunk length, in catalog order.
func (c Catalog) configs(chunkKB int) []Named {
	configs := make([]Named, 0, c.Len())
	configs = append(configs, Named{Name: NoneName, Config: Config{ChunkKB: chunkKB}})

	for _, algorithm := range fixedAlgorithms {
		configs = append(configs, Named{
			Name:   algorithm.name,
			Config: Config{Algorithm: c.classPrefix + algorithm.class, ChunkKB: chunkKB},
		})
	}

	for _, level := range c.zstdLevels {
		configs = append(configs, Named{
			Name: fmt.Sprintf("%s %d", zstdName, level),
			Config: Config{
				Algorithm: c.classPrefix + zstdClass,
				Level:     level,
				HasLevel:  true,
				ChunkKB:   chunkKB,
			},
		})
	}

	return configs
}

// Generate pairs every catalog entry with every chunk length.
// Output follows the order of chunkSizes and the catalog order within each chunk length.
func (c Catalog) Generate(chunkSizes []int) []ChunkConfigs {
	space := make([]ChunkConfigs, 0, len(chunkSizes))
	for _, chunkKB := range chunkSizes {
		space = append(space, ChunkConfigs{ChunkLen: chunkKB, Configs: c.configs(chunkKB)})
	}
	return space
}

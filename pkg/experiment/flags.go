package experiment

import (
	"github.com/intelsdi-x/comprbench/pkg/compression"
	"github.com/intelsdi-x/comprbench/pkg/conf"
)

var (
	// RepetitionsFlag indicates number of trials per configuration.
	RepetitionsFlag = conf.NewIntFlag("repetitions", "Number of trials for each compression configuration", 3)
	// ChunkSizesFlag lists swept compression chunk lengths in KB.
	ChunkSizesFlag = conf.NewIntListFlag("chunk_sizes", "Compression chunk lengths in KB to sweep", compression.DefaultChunkSizes()...)
	// ZstdLevelsFlag lists swept Zstd levels.
	ZstdLevelsFlag = conf.NewIntListFlag("zstd_levels", "Zstd compression levels to sweep", compression.DefaultZstdLevels()...)
	// CatalogFileFlag points to YAML file overriding class prefix and Zstd levels.
	CatalogFileFlag = conf.NewStringFlag("catalog_file", "YAML file overriding compressor class prefix and Zstd levels", "")
	// LoadBudgetFlag is the number of corpus bytes loaded in every trial.
	LoadBudgetFlag = conf.NewIntFlag("load_budget", "Corpus bytes loaded in every trial", 30*1024*1024)
	// LoadBlockSizeFlag is the payload size of a single row.
	LoadBlockSizeFlag = conf.NewIntFlag("load_block_size", "Corpus bytes per row", 1024)
	// LoadPartitionsFlag is the number of partitions rows are spread over.
	LoadPartitionsFlag = conf.NewIntFlag("load_partitions", "Number of partitions rows are spread over round-robin", 10)
)

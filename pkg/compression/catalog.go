package compression

import (
	"io/ioutil"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// catalogFile is the YAML shape of a catalog override, e.g.:
//
//	class_prefix: org.apache.cassandra.io.compress.
//	zstd_levels: [1, 3, 5]
type catalogFile struct {
	ClassPrefix *string `yaml:"class_prefix"`
	ZstdLevels  []int   `yaml:"zstd_levels"`
}

// LoadCatalog reads a catalog from YAML file. Omitted keys keep their defaults.
func LoadCatalog(path string) (Catalog, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return Catalog{}, errors.Wrapf(err, "cannot read catalog file %q", path)
	}
	return ParseCatalog(data)
}

// ParseCatalog decodes a catalog from YAML document.
func ParseCatalog(data []byte) (Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return Catalog{}, errors.Wrap(err, "cannot parse catalog")
	}

	prefix := DefaultClassPrefix
	if file.ClassPrefix != nil {
		prefix = *file.ClassPrefix
	}

	levels := DefaultZstdLevels()
	if file.ZstdLevels != nil {
		levels = file.ZstdLevels
	}

	return NewCatalog(prefix, levels), nil
}

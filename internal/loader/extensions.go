package loader

import (
	"github.com/pb33f/libopenapi/orderedmap"
	"go.yaml.in/yaml/v4"
)

type orderedExtensions = orderedmap.Map[string, *yaml.Node]

func extensionNode(extensions *orderedExtensions, key string) *yaml.Node {
	if extensions == nil {
		return nil
	}
	for pair := extensions.First(); pair != nil; pair = pair.Next() {
		if pair.Key() == key {
			return pair.Value()
		}
	}
	return nil
}

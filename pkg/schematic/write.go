package schematic

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Write publishes both artifacts under dir as base.graph.json and
// base.schem.json. Both are encoded up front and staged as temp files,
// then renamed into place, so a failure anywhere leaves either both
// artifacts published or neither.
func Write(dir, base string, g *Graph, s *Schematic) error {
	graphJSON, err := encode(g)
	if err != nil {
		return err
	}
	schemJSON, err := encode(s)
	if err != nil {
		return err
	}

	graphTmp, err := writeTemp(dir, graphJSON)
	if err != nil {
		return err
	}
	schemTmp, err := writeTemp(dir, schemJSON)
	if err != nil {
		os.Remove(graphTmp)
		return err
	}

	graphPath := filepath.Join(dir, base+".graph.json")
	schemPath := filepath.Join(dir, base+".schem.json")

	if err := os.Rename(graphTmp, graphPath); err != nil {
		os.Remove(graphTmp)
		os.Remove(schemTmp)
		return err
	}
	if err := os.Rename(schemTmp, schemPath); err != nil {
		os.Remove(schemTmp)
		os.Remove(graphPath)
		return err
	}
	return nil
}

func encode(v any) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

func writeTemp(dir string, data []byte) (string, error) {
	f, err := os.CreateTemp(dir, ".goschem-*")
	if err != nil {
		return "", err
	}
	name := f.Name()
	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(name)
		return "", err
	}
	if err := f.Chmod(0o644); err != nil {
		f.Close()
		os.Remove(name)
		return "", err
	}
	if err := f.Close(); err != nil {
		os.Remove(name)
		return "", err
	}
	return name, nil
}

package cosmographia

import (
	"os"
	"testing"
)

func TestConfigDefault(t *testing.T) {
	cfgLoaded = false
	os.Unsetenv("COSMOGRAPHIA_CONFIG")
	if dir := cgConfig().outputDir; dir != "." {
		t.Fatalf("default output dir is %s", dir)
	}
	if !cfgLoaded {
		t.Fatal("configuration not marked as loaded")
	}
}

func TestConfigFromFile(t *testing.T) {
	confDir := t.TempDir()
	outDir := t.TempDir()
	if err := os.WriteFile(confDir+"/conf.toml", []byte("[general]\noutput_path = \""+outDir+"\"\n"), 0644); err != nil {
		t.Fatal(err)
	}
	os.Setenv("COSMOGRAPHIA_CONFIG", confDir)
	defer os.Unsetenv("COSMOGRAPHIA_CONFIG")
	cfgLoaded = false
	if dir := cgConfig().outputDir; dir != outDir {
		t.Fatalf("output dir is %s, expected %s", dir, outDir)
	}
	cfgLoaded = false
}

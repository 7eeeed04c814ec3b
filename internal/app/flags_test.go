package app

import (
	"flag"
	"testing"
)

func TestConfigBind(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("life", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-cols", "80", "-rows", "60", "-fps", "30", "-paused=false", "-load", "glider.rle"}); err != nil {
		t.Fatal(err)
	}

	sc := cfg.SimConfig()
	if sc.Cols != 80 || sc.Rows != 60 || sc.FPS != 30 || sc.Paused {
		t.Fatalf("unexpected sim config %+v", sc)
	}
	if sc.CellSize != 32 || sc.Workers != 4 {
		t.Fatalf("defaults lost: %+v", sc)
	}
	if cfg.LoadPath != "glider.rle" || cfg.SavePath != "grid.gol" {
		t.Fatalf("unexpected paths %q %q", cfg.LoadPath, cfg.SavePath)
	}
}

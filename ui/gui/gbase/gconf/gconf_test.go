package gconf

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"evilboard/src/base"
	"evilboard/src/game"
)

func TestMissingFileGivesDefaults(t *testing.T) {
	file := filepath.Join(t.TempDir(), "evilboard.json")
	c, err := NewGUIConfig(file)
	if err != nil {
		t.Fatal(err)
	}
	def := defaultConfig()
	def.file = file
	if *c != def {
		t.Fatalf("config = %+v, want %+v", *c, def)
	}
}

func TestCorrection(t *testing.T) {
	file := filepath.Join(t.TempDir(), "evilboard.json")
	raw := `{"theme":"neon","board":"purple","role":"referee","fen":"junk",
		"language":"de","window_w":10,"window_h":10,"log_level":"loud","flipped":true}`
	if err := os.WriteFile(file, []byte(raw), 0644); err != nil {
		t.Fatal(err)
	}
	c, err := NewGUIConfig(file)
	if err != nil {
		t.Fatal(err)
	}
	def := defaultConfig()
	if c.Theme != def.Theme || c.Board != def.Board || c.Role != def.Role || c.FEN != def.FEN {
		t.Fatalf("not corrected: %+v", *c)
	}
	if c.Lang != def.Lang || c.WindowW != def.WindowW || c.WindowH != def.WindowH || c.LogLevel != def.LogLevel {
		t.Fatalf("not corrected: %+v", *c)
	}
	if !c.Flipped {
		t.Fatal("valid fields must survive correction")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	for _, name := range []string{"evilboard.json", "evilboard.yaml", "evilboard.yml"} {
		t.Run(name, func(t *testing.T) {
			file := filepath.Join(t.TempDir(), name)
			c, err := NewGUIConfig(file)
			if err != nil {
				t.Fatal(err)
			}
			c.Theme = "dark"
			c.Board = "blue"
			c.Role = "black"
			c.Flipped = true
			c.WindowW = 1200
			if err := c.Save(); err != nil {
				t.Fatal(err)
			}
			got, err := NewGUIConfig(file)
			if err != nil {
				t.Fatal(err)
			}
			if *got != *c {
				t.Fatalf("reloaded %+v, saved %+v", *got, *c)
			}
			if got.BoardStyle().Name != "blue" {
				t.Fatalf("style = %s", got.BoardStyle().Name)
			}
			if got.BoardRole() != game.Player(base.Black) {
				t.Fatalf("role = %v", got.BoardRole())
			}
		})
	}
}

func TestUnknownFormat(t *testing.T) {
	_, err := NewGUIConfig(filepath.Join(t.TempDir(), "evilboard.toml"))
	if !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("err = %v", err)
	}
}

func TestBrokenFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "evilboard.yaml")
	if err := os.WriteFile(file, []byte("theme: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := NewGUIConfig(file); err == nil {
		t.Fatal("expected decode error")
	}
}

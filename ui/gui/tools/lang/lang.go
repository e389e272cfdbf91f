package lang

import (
	"embed"
	"encoding/json"
	"fmt"
)

//go:embed dict/*.json
var dicts embed.FS

type LangType int

const (
	EN LangType = iota
	RU
)

func LangFromString(s string) LangType {
	if s == "ru" {
		return RU
	}
	return EN
}

func (l LangType) String() string {
	if l == RU {
		return "ru"
	}
	return "en"
}

type GUILangWorker struct {
	lang LangType
	dict map[string]string
}

// create object LangWorker and set lang
func NewGUILangWorker(l LangType) (*GUILangWorker, error) {
	lw := &GUILangWorker{}
	if err := lw.SetLang(l); err != nil {
		return nil, err
	}
	return lw, nil
}

func (lw *GUILangWorker) GetLang() LangType {
	return lw.lang
}

func (lw *GUILangWorker) SetLang(l LangType) error {
	data, err := dicts.ReadFile("dict/" + l.String() + ".json")
	if err != nil {
		return err
	}
	dict := make(map[string]string)
	if err := json.Unmarshal(data, &dict); err != nil {
		return fmt.Errorf("error decode dictionary %s: %w", l, err)
	}
	lw.lang = l
	lw.dict = dict
	return nil
}

func (lw *GUILangWorker) T(key string) string {
	if v, ok := lw.dict[key]; ok {
		return v
	}
	return key // if key is not found
}

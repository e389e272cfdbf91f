package ghelper

import (
	"evilboard/ui/gui/ghelper/gfont"
	"evilboard/ui/gui/tools/lang"
)

type GUIAssetsWorker struct {
	fonts *gfont.Fonts
	lang  *lang.GUILangWorker
}

func NewGUIAssetsWorker(language string) (*GUIAssetsWorker, error) {
	fonts, err := gfont.LoadFonts()
	if err != nil {
		return nil, err
	}
	l, err := lang.NewGUILangWorker(lang.LangFromString(language))
	if err != nil {
		return nil, err
	}
	return &GUIAssetsWorker{fonts: fonts, lang: l}, nil
}

func (aw *GUIAssetsWorker) Fonts() *gfont.Fonts {
	return aw.fonts
}

func (aw *GUIAssetsWorker) Lang() *lang.GUILangWorker {
	return aw.lang
}

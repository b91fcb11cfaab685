// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package config

import (
	"embed"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"

	partitalog "github.com/valesdev/partita/utils/log"
)

// Message IDs of the default dialog labels.
const (
	MsgOK  = "DialogOK"
	MsgYes = "DialogYes"
	MsgNo  = "DialogNo"
)

//go:embed locales/*.toml
var localeFS embed.FS

// Bundle returns the message bundle holding the built-in translations.
func Bundle() *i18n.Bundle {
	b := i18n.NewBundle(language.English)
	b.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		partitalog.L().Errorw("read embedded locales", "error", err)
		return b
	}
	for _, e := range entries {
		if _, err := b.LoadMessageFileFS(localeFS, "locales/"+e.Name()); err != nil {
			partitalog.L().Errorw("load locale", "file", e.Name(), "error", err)
		}
	}
	return b
}

// Localized returns a label produced by translating id on every use.
// An unknown message yields "", letting Resolve fall back.
func Localized(loc *i18n.Localizer, id string) Label {
	return Producer(func() string {
		s, err := loc.Localize(&i18n.LocalizeConfig{MessageID: id})
		if err != nil {
			partitalog.L().Debugw("localize", "id", id, "error", err)
			return ""
		}
		return s
	})
}

// Labels returns the dialog labels to use: configured ones win, unset
// ones are translated for Locale when a locale is set.
func (o *Options) Labels() DialogOptions {
	out := o.Dialog
	if o.Locale == "" {
		return out
	}
	tag, err := language.Parse(o.Locale)
	if err != nil {
		partitalog.L().Warnw("invalid locale", "locale", o.Locale, "error", err)
		return out
	}
	loc := i18n.NewLocalizer(Bundle(), tag.String())
	if out.OK.IsZero() {
		out.OK = Localized(loc, MsgOK)
	}
	if out.Yes.IsZero() {
		out.Yes = Localized(loc, MsgYes)
	}
	if out.No.IsZero() {
		out.No = Localized(loc, MsgNo)
	}
	return out
}

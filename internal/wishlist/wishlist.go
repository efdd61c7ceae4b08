// Package wishlist encodes the wishlist stored on the account record.
//
// The stored value is a list of JSON entries joined by '|'. Entries are
// written with every '|' escaped as \u007c so the delimiter never occurs
// inside an entry.
package wishlist

import (
	"bytes"
	"encoding/json"
	"strings"

	"storefront/internal/model"
)

const (
	separator      = "|"
	currentVersion = 1
)

var escapedSeparator = []byte(`\u007c`)

// Entry is a compact variant descriptor kept in the wishlist.
type Entry struct {
	Version   int    `json:"v,omitempty"`
	Title     string `json:"title"`
	ImageLink string `json:"image_link"`
	Price     string `json:"price"`
	SalePrice string `json:"sale_price"`
	Color     string `json:"color"`
	Size      string `json:"size"`
}

// EntryFor builds the wishlist entry for a product.
func EntryFor(p model.Product) Entry {
	return Entry{
		Version:   currentVersion,
		Title:     p.Title,
		ImageLink: p.ImageLink,
		Price:     p.Price,
		SalePrice: p.SalePrice,
		Color:     p.Color,
		Size:      p.Size,
	}
}

// Matches reports whether the entry refers to the product variant.
func (e Entry) Matches(p model.Product) bool {
	return e.Title == p.Title && e.Color == p.Color && e.Size == p.Size
}

// Encode serializes one entry.
func Encode(e Entry) (string, error) {
	e.Version = currentVersion

	data, err := json.Marshal(e)
	if err != nil {
		return "", err
	}
	return string(bytes.ReplaceAll(data, []byte(separator), escapedSeparator)), nil
}

// decodeEntry parses one raw entry. Entries without a version are treated as
// version 1.
func decodeEntry(raw string) (Entry, bool) {
	var e Entry
	if err := json.Unmarshal([]byte(raw), &e); err != nil {
		return Entry{}, false
	}
	if e.Version == 0 {
		e.Version = currentVersion
	}
	if e.Version != currentVersion {
		return Entry{}, false
	}
	return e, true
}

func split(s string) []string {
	var raw []string
	for _, part := range strings.Split(s, separator) {
		if part != "" {
			raw = append(raw, part)
		}
	}
	return raw
}

// Decode returns the readable entries of a stored wishlist, skipping empty,
// malformed and unknown-version entries.
func Decode(s string) []Entry {
	var entries []Entry
	for _, raw := range split(s) {
		if e, ok := decodeEntry(raw); ok {
			entries = append(entries, e)
		}
	}
	return entries
}

// Contains reports whether the stored wishlist holds the product variant.
func Contains(s string, p model.Product) bool {
	for _, e := range Decode(s) {
		if e.Matches(p) {
			return true
		}
	}
	return false
}

// Toggle removes the first entry matching the product or appends a new one.
// It returns the updated account and whether the product was added. Entries
// that cannot be read are kept as they are.
func Toggle(user model.UserAccount, p model.Product) (model.UserAccount, bool, error) {
	raw := split(user.Wishlist)

	for i, entry := range raw {
		if e, ok := decodeEntry(entry); ok && e.Matches(p) {
			raw = append(raw[:i:i], raw[i+1:]...)
			user.Wishlist = strings.Join(raw, separator)
			return user, false, nil
		}
	}

	encoded, err := Encode(EntryFor(p))
	if err != nil {
		return user, false, err
	}

	user.Wishlist = strings.Join(append(raw, encoded), separator)
	return user, true, nil
}

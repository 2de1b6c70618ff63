package ui

import (
	"testing"

	"github.com/milk9111/objectfield/router"
)

func TestPageButtons(t *testing.T) {
	page := router.Page{
		Route: "/contact",
		Title: "Contact",
		Links: []string{"/about", "https://github.com/adamaslan"},
	}

	var navigated, copied []string
	backs := 0
	all := PageActions{
		Back:     func() { backs++ },
		Navigate: func(r string) { navigated = append(navigated, r) },
		CopyLink: func(r string) { copied = append(copied, r) },
	}

	cases := []struct {
		name    string
		actions PageActions
		labels  []string
	}{
		{"all", all, []string{"/about", "Copy https://github.com/adamaslan", "Copy link", "Back"}},
		{"back_only", PageActions{Back: all.Back}, []string{"Back"}},
		{"navigate_only", PageActions{Navigate: all.Navigate}, []string{"/about"}},
		{"none", PageActions{}, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := pageButtons(page, tc.actions)
			if len(got) != len(tc.labels) {
				t.Fatalf("expected %d buttons, got %d", len(tc.labels), len(got))
			}
			for i, b := range got {
				if b.label != tc.labels[i] {
					t.Fatalf("button %d: expected %q, got %q", i, tc.labels[i], b.label)
				}
			}
		})
	}

	for _, b := range pageButtons(page, all) {
		b.onClick()
	}
	if len(navigated) != 1 || navigated[0] != "/about" {
		t.Fatalf("unexpected navigation %v", navigated)
	}
	if len(copied) != 2 || copied[0] != "https://github.com/adamaslan" || copied[1] != "/contact" {
		t.Fatalf("unexpected copies %v", copied)
	}
	if backs != 1 {
		t.Fatalf("expected one back, got %d", backs)
	}
}

//go:build !windows

package joatpath

import (
	"errors"
	"testing"
)

func TestAbsolutePath(t *testing.T) {
	cases := []struct {
		baseDir string
		path    string
		want    string
	}{
		{"/aa/bb/cc", "", "/aa/bb/cc"},
		{"/aa/../bb/cc", "", "/bb/cc"},
		{"/aa/bb/cc", "dd", "/aa/bb/cc/dd"},
		{"/aa/bb/cc", "/dd", "/dd"},
		{"/aa/bb/cc", "dd/ee", "/aa/bb/cc/dd/ee"},
		{"/aa/bb/cc", "/dd/ee", "/dd/ee"},
		{"/aa/bb/cc", "dd/../ee", "/aa/bb/cc/ee"},
		{"/aa/bb/../cc", "dd/../ee", "/aa/cc/ee"},
		{"/a/../b", "c/../d", "/b/d"},
		{"/aa/bb/cc", "///", "/"},
	}
	for _, c := range cases {
		got, err := AbsolutePath(c.baseDir, c.path)
		if err != nil {
			t.Fatalf("AbsolutePath(%q, %q): %v", c.baseDir, c.path, err)
		}
		if got != c.want {
			t.Errorf("AbsolutePath(%q, %q) = %q, want %q", c.baseDir, c.path, got, c.want)
		}
		if got[0] != '/' {
			t.Errorf("AbsolutePath(%q, %q) = %q is not rooted", c.baseDir, c.path, got)
		}
	}
}

func TestAbsolutePathRejectsRelativeBase(t *testing.T) {
	for _, base := range []string{"", ".", "aa/bb/cc", "../aa"} {
		_, err := AbsolutePath(base, "dd")
		if !errors.Is(err, ErrBaseNotAbsolute) {
			t.Errorf("AbsolutePath(%q, \"dd\") error = %v, want ErrBaseNotAbsolute", base, err)
		}
	}
}

func TestAbsolutePathRejectsNUL(t *testing.T) {
	_, err := AbsolutePath("/aa", "bb\x00cc")
	if !errors.Is(err, ErrUnrepresentable) {
		t.Errorf("error = %v, want ErrUnrepresentable", err)
	}
}

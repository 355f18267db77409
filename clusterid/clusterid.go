// Package clusterid derives cluster identifiers from sequence-cluster filenames.
// Files are renamed between clustering rounds but keep their cluster ID as the
// last run of digits in the filename, so that run is used as the matching key.
package clusterid

import (
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

var digits = regexp.MustCompile(`[0-9]+`)

// Stem returns name with its last extension removed. A name whose only dot is
// the leading one (e.g. ".fa") is its own stem.
func Stem(name string) string {
	name = filepath.Base(name)
	i := strings.LastIndexByte(name, '.')
	if i <= 0 {
		return name
	}
	return name[:i]
}

// LastNum returns the last run of digits in the stem of name, leading zeros
// included. If the stem holds no digits the lowercased stem is returned.
func LastNum(name string) string {
	id, _ := lastNum(name)
	return id
}

func lastNum(name string) (id string, numeric bool) {
	stem := Stem(name)
	hits := digits.FindAllString(stem, -1)
	if len(hits) == 0 {
		return strings.ToLower(stem), false
	}
	return hits[len(hits)-1], true
}

// key is the sort key of a filename. Identifiers that parse as integers are
// compared by value, everything else by the raw identifier string.
type key struct {
	num   uint64
	isNum bool
	id    string
	name  string
}

func keyOf(name string) key {
	k := key{name: name}
	var numeric bool
	k.id, numeric = lastNum(name)
	if numeric {
		n, err := strconv.ParseUint(k.id, 10, 64)
		if err == nil {
			k.num, k.isNum = n, true
		}
	}
	return k
}

// Compare orders filenames by cluster identifier, then by filename.
// Numeric identifiers sort before non-numeric ones.
func Compare(a, b string) int {
	ka, kb := keyOf(a), keyOf(b)
	switch {
	case ka.isNum && !kb.isNum:
		return -1
	case !ka.isNum && kb.isNum:
		return 1
	case ka.isNum && ka.num != kb.num:
		if ka.num < kb.num {
			return -1
		}
		return 1
	case !ka.isNum && ka.id != kb.id:
		return strings.Compare(ka.id, kb.id)
	}
	return strings.Compare(ka.name, kb.name)
}

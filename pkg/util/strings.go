package util

import "golang.org/x/exp/slices"

// RemoveDuplicateStrings keeps the first occurrence of every non-empty string
func RemoveDuplicateStrings(strings []string, ignoreList []string) []string {
	presentStrings := make(map[string]bool)
	var list []string

	for _, ignoreString := range ignoreList {
		presentStrings[ignoreString] = true
	}

	for _, item := range strings {
		if _, value := presentStrings[item]; !value && item != "" {
			presentStrings[item] = true
			list = append(list, item)
		}
	}
	return list
}

// SortedSet returns the distinct non-empty strings in lexical order
func SortedSet(strings []string) []string {
	set := RemoveDuplicateStrings(strings, nil)
	slices.Sort(set)

	return set
}

package accounts

import (
	"fmt"
	"strings"

	"github.com/counted-dev/counted/internal/model"
)

// CyclicHierarchyError reports an account that is its own ancestor.
type CyclicHierarchyError struct {
	Code string
}

func (e CyclicHierarchyError) Error() string {
	return fmt.Sprintf("account %q is part of a parent/child cycle", e.Code)
}

// Node is one account in the assembled hierarchy.
type Node struct {
	Account  model.Account
	Children []*Node
}

// BuildTree assembles a flat account list into a forest rooted at accounts
// whose ParentCode equals rootParentCode. Children keep their input order.
// A catalog containing a cycle fails with CyclicHierarchyError instead of
// recursing forever.
func BuildTree(accounts []model.Account, rootParentCode string) ([]*Node, error) {
	if err := detectCycle(accounts); err != nil {
		return nil, err
	}

	children := make(map[string][]model.Account)
	for _, a := range accounts {
		children[a.ParentCode] = append(children[a.ParentCode], a)
	}

	var build func(parentCode string) []*Node
	build = func(parentCode string) []*Node {
		var nodes []*Node
		for _, a := range children[parentCode] {
			nodes = append(nodes, &Node{
				Account:  a,
				Children: build(a.Code),
			})
		}
		return nodes
	}
	return build(rootParentCode), nil
}

// detectCycle walks each account's parent chain with a visited set.
func detectCycle(accounts []model.Account) error {
	byCode := make(map[string]model.Account, len(accounts))
	for _, a := range accounts {
		byCode[a.Code] = a
	}
	for _, a := range accounts {
		seen := make(map[string]bool)
		cur := a.Code
		for cur != "" {
			if seen[cur] {
				return CyclicHierarchyError{Code: a.Code}
			}
			seen[cur] = true
			parent, ok := byCode[cur]
			if !ok {
				break
			}
			cur = parent.ParentCode
		}
	}
	return nil
}

// Search returns the codes of accounts matching term, plus every ancestor
// of each match, so a filtered tree still shows the path to the root.
// Matching is case-insensitive substring containment over code, name,
// type, and category.
func Search(accounts []model.Account, term string) map[string]struct{} {
	byCode := make(map[string]model.Account, len(accounts))
	for _, a := range accounts {
		byCode[a.Code] = a
	}

	needle := strings.ToLower(term)
	result := make(map[string]struct{})
	for _, a := range accounts {
		if !matches(a, needle) {
			continue
		}
		result[a.Code] = struct{}{}
		// Expand ancestors; the visited check doubles as a cycle guard.
		cur := a.ParentCode
		for cur != "" {
			if _, ok := result[cur]; ok {
				break
			}
			result[cur] = struct{}{}
			parent, ok := byCode[cur]
			if !ok {
				break
			}
			cur = parent.ParentCode
		}
	}
	return result
}

func matches(a model.Account, needle string) bool {
	return strings.Contains(strings.ToLower(a.Code), needle) ||
		strings.Contains(strings.ToLower(a.Name), needle) ||
		strings.Contains(strings.ToLower(string(a.Type)), needle) ||
		strings.Contains(strings.ToLower(a.Category), needle)
}

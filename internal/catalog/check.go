package catalog

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// AliasConflictError reports an alias that equals the canonical name of a different field.
// Resolution maps the alias to Canonical, which makes the other field unreachable by name.
type AliasConflictError struct {
	Alias     string
	Canonical string
	Shadowed  string
}

func (e *AliasConflictError) Error() string {
	return fmt.Sprintf("alias %q of %q shadows field %q", e.Alias, e.Canonical, e.Shadowed)
}

// DuplicateAliasError reports an alias listed under two canonical names. The first entry wins.
type DuplicateAliasError struct {
	Alias  string
	Winner string
	Loser  string
}

func (e *DuplicateAliasError) Error() string {
	return fmt.Sprintf("alias %q is listed for both %q and %q; %q wins", e.Alias, e.Winner, e.Loser, e.Winner)
}

// DuplicateEntryError reports a canonical name with more than one alias entry.
type DuplicateEntryError struct {
	Canonical string
}

func (e *DuplicateEntryError) Error() string {
	return fmt.Sprintf("canonical field %q has more than one alias entry", e.Canonical)
}

// Check reports data-authoring problems in the alias table. It does not change resolution:
// a catalog with problems stays usable and resolves first-match-wins.
func (c *Catalog) Check() error {
	var result *multierror.Error

	seenEntries := make(map[string]bool, len(c.aliases))
	owners := make(map[string]string)

	for _, entry := range c.aliases {
		if seenEntries[entry.Canonical] {
			result = multierror.Append(result, &DuplicateEntryError{Canonical: entry.Canonical})
		}
		seenEntries[entry.Canonical] = true

		for _, alias := range entry.Aliases {
			key := strings.ToLower(strings.TrimSpace(alias))

			if owner, ok := owners[key]; ok && owner != entry.Canonical {
				result = multierror.Append(result, &DuplicateAliasError{Alias: alias, Winner: owner, Loser: entry.Canonical})
				continue
			}
			owners[key] = entry.Canonical

			if name, ok := c.canonical[key]; ok && name != entry.Canonical {
				result = multierror.Append(result, &AliasConflictError{Alias: alias, Canonical: entry.Canonical, Shadowed: name})
			}
		}
	}

	return result.ErrorOrNil()
}

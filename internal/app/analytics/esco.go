package analytics

import (
	"context"
	"fmt"
	"strings"

	"github.com/yigit/alumnisphere/internal/app/models"
	"github.com/yigit/alumnisphere/internal/app/models/dto"
)

// ESCO codes encode their level: levels 1 to 4 are the first N digits of the
// ISCO group ("2", "25", "251", "2511"), deeper levels append dotted segments
// ("2511.14" is level 5, "2511.14.1" level 6).
const escoDigitLevels = 4

// ResolveEscoCode truncates code, classified at codeLevel, to the requested
// level. Levels 1 to 4 keep the first digits of the code, so a code shorter
// than the level is kept whole. Dotted levels skip codes classified less
// specifically than requested; a code without a level is judged by its
// segments. A zero level keeps the code unchanged.
func ResolveEscoCode(code string, codeLevel, level int) (string, bool) {
	if code == "" {
		return "", false
	}
	if level <= 0 || level == codeLevel {
		return code, true
	}

	if level <= escoDigitLevels {
		return code[:min(level, len(code))], true
	}

	if codeLevel > 0 && codeLevel < level {
		return "", false
	}
	parts := strings.Split(code, ".")
	keep := level - escoDigitLevels + 1
	if len(parts) < keep {
		return "", false
	}
	return strings.Join(parts[:keep], "."), true
}

// ParentEscoCode returns the code one level up, or "" for a root code
func ParentEscoCode(code string) string {
	if len(code) <= 1 {
		return ""
	}
	if i := strings.LastIndex(code, "."); i >= 0 {
		return code[:i]
	}
	return code[:len(code)-1]
}

// EscoAncestors returns code followed by each of its ancestors up to the root
func EscoAncestors(code string) []string {
	var chain []string
	for c := code; c != ""; c = ParentEscoCode(c) {
		chain = append(chain, c)
	}
	return chain
}

// ResolvedEscoCodes lists the distinct codes the role dimension needs titles
// for at the requested level.
func ResolvedEscoCodes(alumni []models.Alumni, level int) []string {
	seen := make(map[string]struct{})
	var codes []string
	for i := range alumni {
		for j := range alumni[i].Roles {
			jc := alumni[i].Roles[j].PrimaryClassification()
			if jc == nil {
				continue
			}
			code, ok := ResolveEscoCode(jc.EscoClassification.Code, jc.EscoClassification.Level, level)
			if !ok {
				continue
			}
			if _, dup := seen[code]; dup {
				continue
			}
			seen[code] = struct{}{}
			codes = append(codes, code)
		}
	}
	return codes
}

// RoleHierarchy returns the ancestry of code, root first. The walk stops at
// the first code the catalog does not know.
func RoleHierarchy(ctx context.Context, catalog ClassificationCatalog, code string) ([]dto.RoleHierarchyItem, error) {
	chain := EscoAncestors(code)
	found, err := catalog.Classifications(ctx, chain)
	if err != nil {
		return nil, fmt.Errorf("load classifications: %w", err)
	}

	var upward []dto.RoleHierarchyItem
	for _, c := range chain {
		cls, ok := found[c]
		if !ok {
			break
		}
		upward = append(upward, dto.RoleHierarchyItem{Code: c, Name: cls.TitleEn, Level: cls.Level})
	}

	items := make([]dto.RoleHierarchyItem, 0, len(upward))
	for i := len(upward) - 1; i >= 0; i-- {
		items = append(items, upward[i])
	}
	return items, nil
}

package catalog

import (
	"strings"

	"go.uber.org/zap"
)

// AliasEntry maps a canonical field name to the synonyms a caller may type instead.
type AliasEntry struct {
	Canonical string   `json:"canonical"`
	Aliases   []string `json:"aliases"`
}

// AliasTable is an ordered list of alias entries. When the same alias appears under two
// canonical names the earlier entry wins.
type AliasTable []AliasEntry

// lookup returns the canonical name for alias, or false when no entry lists it.
// alias must already be lowercased and trimmed.
func (t AliasTable) lookup(alias string) (string, bool) {
	for _, entry := range t {
		for _, a := range entry.Aliases {
			if strings.ToLower(a) == alias {
				return entry.Canonical, true
			}
		}
	}
	return "", false
}

// AliasesOf returns the aliases listed for canonical, or nil.
func (t AliasTable) AliasesOf(canonical string) []string {
	for _, entry := range t {
		if entry.Canonical == canonical {
			return entry.Aliases
		}
	}
	return nil
}

// Resolve maps a raw field token to its canonical name. The token is trimmed and compared
// case-insensitively against the alias table first, then against the known canonical names.
// Tokens that match neither are returned trimmed but otherwise unchanged; whether they
// exist is decided by Locate.
func (c *Catalog) Resolve(token string) string {
	trimmed := strings.TrimSpace(token)
	key := strings.ToLower(trimmed)

	if canonical, ok := c.aliases.lookup(key); ok {
		c.logger.Debug("resolved field alias",
			zap.String("token", trimmed),
			zap.String("canonical", canonical))
		return canonical
	}

	if canonical, ok := c.canonical[key]; ok {
		return canonical
	}

	return trimmed
}

func builtinAliases() AliasTable {
	return AliasTable{
		// about
		{Canonical: "name", Aliases: []string{"fullname", "full_name", "realname"}},
		{Canonical: "title", Aliases: []string{"job_title", "headline"}},
		{Canonical: "subtitle", Aliases: []string{"tagline", "sub_title"}},
		{Canonical: "bio", Aliases: []string{"biography", "about_me"}},
		{Canonical: "shortBio", Aliases: []string{"short_bio", "summary", "intro"}},
		{Canonical: "location", Aliases: []string{"city", "address", "based"}},
		{Canonical: "email", Aliases: []string{"gmail", "mail", "e-mail"}},
		{Canonical: "phone", Aliases: []string{"mobile", "cell", "telephone", "number"}},
		{Canonical: "github", Aliases: []string{"gh", "git_hub"}},
		{Canonical: "linkedin", Aliases: []string{"li", "linked_in"}},
		{Canonical: "portfolio", Aliases: []string{"website", "site", "homepage"}},
		{Canonical: "availability", Aliases: []string{"available", "status"}},
		{Canonical: "languages", Aliases: []string{"spoken_languages", "spoken"}},

		// experience
		{Canonical: "latestRole", Aliases: []string{"latest_role", "current_role", "role"}},
		{Canonical: "presentEmployer", Aliases: []string{"employer", "company", "current_company"}},
		{Canonical: "recentCareer", Aliases: []string{"recent", "recent_jobs"}},
		{Canonical: "entireCareer", Aliases: []string{"career", "work_history", "jobs"}},

		// skills
		{Canonical: "programming_languages", Aliases: []string{"langs", "programming", "coding_languages"}},
		{Canonical: "frameworks", Aliases: []string{"framework", "libs"}},
		{Canonical: "databases", Aliases: []string{"database", "db", "dbs"}},
		{Canonical: "apis", Aliases: []string{"api"}},
		{Canonical: "devOps", Aliases: []string{"ops", "infrastructure", "infra"}},
		{Canonical: "tools", Aliases: []string{"tooling", "toolbox"}},

		// education
		{Canonical: "highschool", Aliases: []string{"high_school", "school", "hsc"}},
		{Canonical: "college", Aliases: []string{"university", "uni", "degree"}},
		{Canonical: "certifications", Aliases: []string{"certs", "certificates"}},
		{Canonical: "onlineCourses", Aliases: []string{"courses", "online_courses", "moocs"}},

		// projects
		{Canonical: "fullStack", Aliases: []string{"full_stack"}},
		{Canonical: "frontend", Aliases: []string{"front_end", "ui"}},
		{Canonical: "bots", Aliases: []string{"bot", "automation"}},

		// hidden
		{Canonical: "nickname", Aliases: []string{"nick"}},
		{Canonical: "whatsapp", Aliases: []string{"wa"}},
		{Canonical: "telegram", Aliases: []string{"tg"}},
		{Canonical: "hometown", Aliases: []string{"home", "birthplace"}},
		{Canonical: "os", Aliases: []string{"operating_system"}},
		{Canonical: "editor", Aliases: []string{"ide"}},
		{Canonical: "coffee", Aliases: []string{"caffeine", "drink"}},
		{Canonical: "salary", Aliases: []string{"pay", "compensation", "ctc"}},
		{Canonical: "rate", Aliases: []string{"hourly", "hourly_rate"}},
		{Canonical: "preferred", Aliases: []string{"remote", "work_mode", "onsite"}},
		{Canonical: "sponsorship", Aliases: []string{"visa"}},
		{Canonical: "relocation", Aliases: []string{"relocate"}},
		{Canonical: "workstyle", Aliases: []string{"work_style", "methodology"}},
		{Canonical: "teamsize", Aliases: []string{"team_size", "team"}},
		{Canonical: "timezone", Aliases: []string{"tz", "time_zone"}},
		{Canonical: "learning", Aliases: []string{"currently_learning", "studying"}},
		{Canonical: "weakness", Aliases: []string{"weaknesses"}},
		{Canonical: "strength", Aliases: []string{"strengths"}},
		{Canonical: "ai_tools", Aliases: []string{"ai", "aitools"}},
		{Canonical: "favorite_subject", Aliases: []string{"subject", "fav_subject"}},
		{Canonical: "favorite_teacher", Aliases: []string{"teacher", "fav_teacher"}},
		{Canonical: "favorite_project", Aliases: []string{"proud", "fav_project"}},
		{Canonical: "bugs_fixed", Aliases: []string{"bugs"}},
		{Canonical: "failed_project", Aliases: []string{"failure", "failed"}},

		// extra
		{Canonical: "python", Aliases: []string{"py"}},
		{Canonical: "javascript", Aliases: []string{"js"}},
		{Canonical: "postgresql", Aliases: []string{"postgres", "pg"}},
		{Canonical: "mongodb", Aliases: []string{"mongo"}},
		{Canonical: "vscode", Aliases: []string{"vs_code"}},
		{Canonical: "rest", Aliases: []string{"restful"}},
		{Canonical: "tdd", Aliases: []string{"test_driven"}},
	}
}

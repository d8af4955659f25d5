package plan

import "strings"

// Keyword sets cover the three supported interview languages so that a
// title written in any of them classifies the same way.
var technicalKeywords = []string{
	"developer", "desenvolvedor", "desenvolvedora", "desarrollador", "desarrolladora",
	"engineer", "engenheiro", "engenheira", "ingeniero", "ingeniera",
	"programmer", "programador", "programadora",
	"software", "devops", "sre", "backend", "frontend", "fullstack", "full stack",
	"mobile", "qa", "architect", "arquiteto", "arquitecto",
	"data scientist", "cientista de dados", "científico de datos",
	"data analyst", "analista de dados", "analista de datos",
}

var managerialKeywords = []string{
	"manager", "gerente", "gestor", "gestora",
	"director", "diretor", "diretora",
	"coordinator", "coordenador", "coordenadora", "coordinador", "coordinadora",
	"head of", "supervisor", "supervisora", "chefe", "jefe", "jefa",
	"team lead", "tech lead", "líder",
}

// Classify maps a free-text job title plus the declared seniority into a
// coarse role category. Matching is a case-insensitive substring check
// against fixed keyword sets; the technical set is evaluated first, so a
// title matching both categories classifies as technical. A leadership
// job level forces managerial when no technical keyword matches. Always
// returns a value, never errors.
func Classify(jobTitle string, level JobLevel) RoleCategory {
	title := strings.ToLower(jobTitle)

	for _, kw := range technicalKeywords {
		if strings.Contains(title, kw) {
			return RoleTechnical
		}
	}

	if level == LevelLeadership {
		return RoleManagerial
	}
	for _, kw := range managerialKeywords {
		if strings.Contains(title, kw) {
			return RoleManagerial
		}
	}

	return RoleGeneral
}

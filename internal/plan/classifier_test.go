package plan

import "testing"

func TestClassify(t *testing.T) {
	cases := []struct {
		name  string
		title string
		level JobLevel
		want  RoleCategory
	}{
		{"developer en", "Senior Backend Developer", LevelSenior, RoleTechnical},
		{"developer pt", "Desenvolvedora Front-end Pleno", LevelMid, RoleTechnical},
		{"developer es", "Ingeniero de Software", "", RoleTechnical},
		{"data role", "Cientista de Dados", LevelJunior, RoleTechnical},
		{"manager en", "Product Manager", "", RoleManagerial},
		{"manager pt", "Gerente de Projetos", LevelMid, RoleManagerial},
		{"director es", "Director Comercial", "", RoleManagerial},
		{"general", "Account Executive", LevelMid, RoleGeneral},
		{"empty title", "", "", RoleGeneral},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Classify(tc.title, tc.level); got != tc.want {
				t.Fatalf("Classify(%q, %q) = %q, want %q", tc.title, tc.level, got, tc.want)
			}
		})
	}
}

func TestClassifyTieBreakPrefersTechnical(t *testing.T) {
	// Contains both an engineering and a management keyword.
	if got := Classify("Engineering Manager", ""); got != RoleTechnical {
		t.Fatalf("Classify(Engineering Manager) = %q, want technical", got)
	}
	if got := Classify("Gerente de Desenvolvimento", ""); got != RoleTechnical {
		t.Fatalf("Classify(Gerente de Desenvolvimento) = %q, want technical", got)
	}
}

func TestClassifyLeadershipForcesManagerial(t *testing.T) {
	if got := Classify("Account Executive", LevelLeadership); got != RoleManagerial {
		t.Fatalf("leadership level should force managerial, got %q", got)
	}
	// A technical keyword still wins over the leadership level.
	if got := Classify("Principal Software Engineer", LevelLeadership); got != RoleTechnical {
		t.Fatalf("technical keyword should beat leadership level, got %q", got)
	}
}

package entity

// Roles válidos para User.
const (
	RoleGerencia = "GERENCIA"
	RoleOperador = "OPERADOR"
)

// Módulos de permiso.
const (
	PermDashboard     = "dashboard"
	PermEstoque       = "estoque"
	PermMovimentacoes = "movimentacoes"
	PermEnderecamento = "enderecamento"
	PermRelatorios    = "relatorios"
	PermAjustes       = "ajustes"
	PermAtividades    = "atividades"
	PermGestaoDia     = "gestaoDia"
	PermAdmin         = "admin"
)

// Permissions flags por módulo.
type Permissions struct {
	Dashboard     bool `json:"dashboard"`
	Estoque       bool `json:"estoque"`
	Movimentacoes bool `json:"movimentacoes"`
	Enderecamento bool `json:"enderecamento"`
	Relatorios    bool `json:"relatorios"`
	Ajustes       bool `json:"ajustes"`
	Atividades    bool `json:"atividades"`
	GestaoDia     bool `json:"gestaoDia"`
	Admin         bool `json:"admin"`
}

// AllPermissions todos los módulos habilitados (cuenta de gerencia inicial).
func AllPermissions() Permissions {
	return Permissions{
		Dashboard: true, Estoque: true, Movimentacoes: true, Enderecamento: true,
		Relatorios: true, Ajustes: true, Atividades: true, GestaoDia: true, Admin: true,
	}
}

// Allows indica si el módulo está habilitado. Módulos desconocidos quedan denegados.
func (p Permissions) Allows(module string) bool {
	switch module {
	case PermDashboard:
		return p.Dashboard
	case PermEstoque:
		return p.Estoque
	case PermMovimentacoes:
		return p.Movimentacoes
	case PermEnderecamento:
		return p.Enderecamento
	case PermRelatorios:
		return p.Relatorios
	case PermAjustes:
		return p.Ajustes
	case PermAtividades:
		return p.Atividades
	case PermGestaoDia:
		return p.GestaoDia
	case PermAdmin:
		return p.Admin
	}
	return false
}

// User representa un usuario del sistema.
type User struct {
	ID           string      `json:"id"`
	Username     string      `json:"username"`
	PasswordHash string      `json:"passwordHash"` // bcrypt
	Role         string      `json:"role"`
	Permissions  Permissions `json:"permissions"`
}

// ValidRole indica si r es GERENCIA u OPERADOR.
func ValidRole(r string) bool {
	return r == RoleGerencia || r == RoleOperador
}

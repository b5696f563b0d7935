package entities

// Role mirrors the user groups of the contract-management directory.

type Role string

const (
	RoleCoordinator Role = "coordenador"
	RoleManager     Role = "gerente"
	RoleDirector    Role = "diretoria"
	RoleFinance     Role = "financeiro"
	RoleSupply      Role = "suprimento"
	RoleLineLead    Role = "lider"
)

// User is a directory entry. Work centers group coordinators with the
// managers responsible for them; they drive notification fan-out and
// gate authorization.

type User struct {
	ID          string   `json:"id"`
	Username    string   `json:"username"`
	FullName    string   `json:"full_name,omitempty"`
	Email       string   `json:"email"`
	Role        Role     `json:"role"`
	WorkCenters []string `json:"work_centers,omitempty"`
}

func (u User) SharesWorkCenter(other User) bool {
	for _, c := range u.WorkCenters {
		for _, o := range other.WorkCenters {
			if c == o {
				return true
			}
		}
	}
	return false
}

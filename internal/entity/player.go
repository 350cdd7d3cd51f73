package entity

// Certificate kinds a captain can earn. A player holds at most one of each.
const (
	CertFire      = "fire"
	CertRescue    = "rescue"
	CertCollision = "collision"
	CertAbandon   = "abandon"
)

// BaseCertificates are the four kinds checked by a navy inspection.
var BaseCertificates = []string{CertFire, CertRescue, CertCollision, CertAbandon}

// Bankruptcy stages.
const (
	SolventStage     = 0
	LiquidationStage = 1
	EliminatedStage  = 2
)

// Tug fleet categories.
const (
	TugPort    = "port"
	TugOcean   = "ocean"
	TugTuglord = "tuglord"
)

type Loan struct {
	Principal      int `json:"principal"`
	TotalDue       int `json:"total_due"`
	TurnsRemaining int `json:"turns_remaining"`
}

// DockedTugs tracks fleet units immobilized after a mandatory shipyard visit.
// TurnsRemaining == 0 means nothing is docked.
type DockedTugs struct {
	Port           int  `json:"port"`
	Ocean          bool `json:"ocean"`
	Tuglord        bool `json:"tuglord"`
	TurnsRemaining int  `json:"turns_remaining"`
}

type Player struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Money    int    `json:"money"`
	Position int    `json:"position"`

	// Properties holds owned space positions in acquisition order. The order
	// matters: forced liquidation sells oldest first.
	Properties []int `json:"properties"`

	PortTugs    int        `json:"port_tugs"`
	HasOceanTug bool       `json:"has_ocean_tug"`
	HasTuglord  bool       `json:"has_tuglord"`
	DockedTugs  DockedTugs `json:"docked_tugs"`

	Certificates []string    `json:"certificates"`
	Loans        []Loan      `json:"loans"`
	Stocks       map[int]int `json:"stocks"`

	BankruptcyStage int  `json:"bankruptcy_stage"`
	IsEliminated    bool `json:"is_eliminated"`
	SkipNextTurn    bool `json:"skip_next_turn"`
	SkipNextRent    bool `json:"skip_next_rent"`

	// OrderRoll is only used while the game is in setup to freeze play order.
	OrderRoll int `json:"order_roll,omitempty"`
}

func NewPlayer(id int, name string, startingMoney int) *Player {
	return &Player{
		ID:           id,
		Name:         name,
		Money:        startingMoney,
		Properties:   []int{},
		Certificates: []string{},
		Loans:        []Loan{},
		Stocks:       map[int]int{},
	}
}

// OperativePortTugs - port tugs owned minus currently docked.
func (that *Player) OperativePortTugs() int {
	n := that.PortTugs - that.DockedTugs.Port
	if n < 0 {
		return 0
	}
	return n
}

func (that *Player) OperativeOceanTug() bool {
	return that.HasOceanTug && !that.DockedTugs.Ocean
}

func (that *Player) OperativeTuglord() bool {
	return that.HasTuglord && !that.DockedTugs.Tuglord
}

func (that *Player) HasCertificate(kind string) bool {
	for _, c := range that.Certificates {
		if c == kind {
			return true
		}
	}
	return false
}

func (that *Player) GrantCertificate(kind string) {
	if !that.HasCertificate(kind) {
		that.Certificates = append(that.Certificates, kind)
	}
}

func (that *Player) HasAllBaseCertificates() bool {
	for _, kind := range BaseCertificates {
		if !that.HasCertificate(kind) {
			return false
		}
	}
	return true
}

func (that *Player) OwnsSpace(pos int) bool {
	for _, p := range that.Properties {
		if p == pos {
			return true
		}
	}
	return false
}

func (that *Player) AddProperty(pos int) {
	if !that.OwnsSpace(pos) {
		that.Properties = append(that.Properties, pos)
	}
}

func (that *Player) RemoveProperty(pos int) {
	kept := that.Properties[:0]
	for _, p := range that.Properties {
		if p != pos {
			kept = append(kept, p)
		}
	}
	that.Properties = kept
}

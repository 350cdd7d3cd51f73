package entity

// Space types on the board.
const (
	SpaceStart         = "start"
	SpacePort          = "port"
	SpaceEvent         = "event"
	SpaceService       = "service"
	SpaceBank          = "bank"
	SpaceTugPurchase   = "tug_purchase"
	SpaceSurprise      = "surprise"
	SpaceWorkshop      = "workshop"
	SpaceLuck          = "luck"
	SpaceTraining      = "training"
	SpaceUniversity    = "university"
	SpaceStockExchange = "stock_exchange"
	SpaceTuglordCert   = "tuglord_certificate"
	SpaceTax           = "tax"
	SpaceContract      = "contract"
	SpaceCorner        = "corner"
)

// Space is one board position. The catalog fields are immutable after load;
// Owner and Stocks are the only runtime-mutable fields and exist once a
// property has been bought.
type Space struct {
	Pos  int    `json:"pos"`
	Name string `json:"name"`
	Type string `json:"type"`

	Price       int    `json:"price,omitempty"`
	Rent        [6]int `json:"rent,omitempty"`
	ServiceFee  int    `json:"service_fee,omitempty"`
	Certificate string `json:"certificate,omitempty"`
	TugType     string `json:"tug_type,omitempty"`
	// TuglordBuildCost is set on shipyard services where the owner may
	// commission a tuglord.
	TuglordBuildCost int `json:"tuglord_build_cost,omitempty"`
	// Amount is the tax charge or contract payout for those space types.
	Amount int `json:"amount,omitempty"`

	Owner  int `json:"owner,omitempty"`
	Stocks int `json:"stocks,omitempty"`
}

// IsOwnable reports whether the space can be bought and held as a property.
func (that *Space) IsOwnable() bool {
	switch that.Type {
	case SpacePort, SpaceWorkshop, SpaceService:
		return true
	default:
		return false
	}
}

func (that *Space) IsOwned() bool {
	return that.Owner != 0
}

// portRent builds a rent table from a port's price: tier 0 is 10% of the
// price, each operative-fleet tier raises it up to 5x at tuglord level.
func portRent(price int) [6]int {
	base := price / 10
	return [6]int{base, base * 3 / 2, base * 2, base * 5 / 2, base * 7 / 2, base * 5}
}

// DefaultBoard returns the standard 36-space catalog.
func DefaultBoard() []*Space {
	spaces := []*Space{
		{Name: "Home Harbor", Type: SpaceStart},
		{Name: "Port of Fortaleza", Type: SpacePort, Price: 5000, Rent: portRent(5000)},
		{Name: "Ocean Event", Type: SpaceEvent},
		{Name: "Port of Santos", Type: SpacePort, Price: 7000, Rent: portRent(7000)},
		{Name: "Harbor Tug Dealer", Type: SpaceTugPurchase, Price: 200, TugType: TugPort},
		{Name: "Bank", Type: SpaceBank},
		{Name: "Port of Rio", Type: SpacePort, Price: 8000, Rent: portRent(8000)},
		{Name: "Surprise Card", Type: SpaceSurprise},
		{Name: "Naval Workshop", Type: SpaceWorkshop, Price: 4000, ServiceFee: 300, Certificate: CertFire},
		{Name: "Lucky Corner", Type: SpaceCorner},
		{Name: "Port of Salvador", Type: SpacePort, Price: 6000, Rent: portRent(6000)},
		{Name: "Ocean Event", Type: SpaceEvent},
		{Name: "Atlantic Shipyard", Type: SpaceService, Price: 5000, TuglordBuildCost: 750},
		{Name: "Port of Vitoria", Type: SpacePort, Price: 5500, Rent: portRent(5500)},
		{Name: "Ocean Tug Dealer", Type: SpaceTugPurchase, Price: 500, TugType: TugOcean},
		{Name: "Port of Macae", Type: SpacePort, Price: 7500, Rent: portRent(7500)},
		{Name: "Luck Card", Type: SpaceLuck},
		{Name: "Port of Acu", Type: SpacePort, Price: 8000, Rent: portRent(8000)},
		{Name: "Tuglord Certification", Type: SpaceTuglordCert},
		{Name: "Port of Itajai", Type: SpacePort, Price: 6500, Rent: portRent(6500)},
		{Name: "Ocean Event", Type: SpaceEvent},
		{Name: "Repair Workshop", Type: SpaceWorkshop, Price: 4500, ServiceFee: 350, Certificate: CertRescue},
		{Name: "Port of Rio Grande", Type: SpacePort, Price: 6000, Rent: portRent(6000)},
		{Name: "Stock Exchange", Type: SpaceStockExchange},
		{Name: "Port of Paranagua", Type: SpacePort, Price: 7000, Rent: portRent(7000)},
		{Name: "Training Center", Type: SpaceTraining, Price: 2000, Certificate: CertCollision},
		{Name: "Port of Suape", Type: SpacePort, Price: 7500, Rent: portRent(7500)},
		{Name: "Maritime University", Type: SpaceUniversity},
		{Name: "Port of Manaus", Type: SpacePort, Price: 5000, Rent: portRent(5000)},
		{Name: "Luck Card", Type: SpaceLuck},
		{Name: "Naval Shipyard", Type: SpaceWorkshop, Price: 5500, ServiceFee: 400, Certificate: CertAbandon},
		{Name: "Port of Belem", Type: SpacePort, Price: 5500, Rent: portRent(5500)},
		{Name: "Ocean Event", Type: SpaceEvent},
		{Name: "Port of Sao Luis", Type: SpacePort, Price: 6000, Rent: portRent(6000)},
		{Name: "Port Authority Tax", Type: SpaceTax, Amount: 1000},
		{Name: "Towage Contract", Type: SpaceContract, Amount: 800},
	}

	for i, space := range spaces {
		space.Pos = i
	}

	return spaces
}

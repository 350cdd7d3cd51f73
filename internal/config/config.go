package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel          string `yaml:"log-level" env-default:"info"`
	HTTPPort          string `yaml:"http-port" env-default:"9090"`
	SocketPort        string `yaml:"socket-port" env-default:"8080"`
	Redis             Redis  `yaml:"redis"`
	SQLiteStoragePath string `yaml:"sqlite-storage-path" env-default:"./harborlord.db"`
	Rules             Rules  `yaml:"rules"`
}

type Redis struct {
	Host string `yaml:"host" env-default:"localhost"`
	Port string `yaml:"port" env-default:"6379"`
}

// Rules holds the economic constants of a game session. Every value has a
// default matching the standard rulebook so an empty block is playable.
type Rules struct {
	StartingMoney   int `yaml:"starting-money" env-default:"30000"`
	PassStartBonus  int `yaml:"pass-start-bonus" env-default:"4000"`
	MinPlayers      int `yaml:"min-players" env-default:"2"`
	MaxPlayers      int `yaml:"max-players" env-default:"6"`
	LoanMarkupPct   int `yaml:"loan-markup-pct" env-default:"10"`
	LoanTermRounds  int `yaml:"loan-term-rounds" env-default:"5"`
	DockingTurns    int `yaml:"docking-turns" env-default:"3"`
	DockingFee      int `yaml:"docking-fee" env-default:"75"`
	StockPricePct   int `yaml:"stock-price-pct" env-default:"30"`
	DividendPct     int `yaml:"dividend-pct" env-default:"50"`
	MaxStocksPerLot int `yaml:"max-stocks-per-lot" env-default:"5"`
	LiquidationPct  int `yaml:"liquidation-pct" env-default:"50"`

	PortTugValue  int `yaml:"port-tug-value" env-default:"100"`
	OceanTugValue int `yaml:"ocean-tug-value" env-default:"250"`
	TuglordValue  int `yaml:"tuglord-value" env-default:"375"`

	InspectionReward int `yaml:"inspection-reward" env-default:"200"`
	InspectionFine   int `yaml:"inspection-fine" env-default:"150"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}

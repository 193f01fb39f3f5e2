package model

// Player is an individual competing for a team.
type Player struct {
	// Name is the player's display name.
	Name string `json:"name"`

	// Position drives the bonus tier and nothing else.
	Position Position `json:"position"`
}

// NewPlayer creates a Player with the given name and position.
func NewPlayer(name string, position Position) Player {
	return Player{Name: name, Position: position}
}

// Team is a named collection of players.
// Players keep the order in which they were added.
type Team struct {
	Name    string   `json:"name"`
	Players []Player `json:"players"`
}

// NewTeam creates a Team with the given players.
func NewTeam(name string, players ...Player) Team {
	t := Team{Name: name, Players: make([]Player, 0, len(players))}
	t.Players = append(t.Players, players...)
	return t
}

// AddPlayer appends a player to the team.
func (t *Team) AddPlayer(p Player) {
	t.Players = append(t.Players, p)
}

// Referee is an official registered independently of any team.
type Referee struct {
	Name string `json:"name"`
}

// NewReferee creates a Referee with the given name.
func NewReferee(name string) Referee {
	return Referee{Name: name}
}

// Championship is the roster of a single run: the registered teams and referees.
// It is filled by registration and then read by the classification and report steps.
type Championship struct {
	Teams    []Team    `json:"teams"`
	Referees []Referee `json:"referees"`
}

// NewChampionship creates an empty Championship.
func NewChampionship() *Championship {
	return &Championship{
		Teams:    make([]Team, 0),
		Referees: make([]Referee, 0),
	}
}

// PlayerCount returns the number of players across all teams.
func (c *Championship) PlayerCount() int {
	n := 0
	for _, t := range c.Teams {
		n += len(t.Players)
	}
	return n
}

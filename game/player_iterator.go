package game

type PlayerIterator struct {
	players []*playerController
	cycler  *Cycler
}

func newPlayerIterator(players []Player) *PlayerIterator {
	controllers := make([]*playerController, 0, len(players))
	for seat, player := range players {
		controllers = append(controllers, newPlayerController(seat, player))
	}
	return &PlayerIterator{
		players: controllers,
		cycler:  NewCycler(len(players)),
	}
}

func (i *PlayerIterator) get(seat int) (*playerController, bool) {
	if seat < 0 || seat >= len(i.players) {
		return nil, false
	}
	return i.players[seat], true
}

func (i *PlayerIterator) Size() int {
	return len(i.players)
}

func (i *PlayerIterator) Current() *playerController {
	return i.players[i.cycler.Current()]
}

func (i *PlayerIterator) Peek() *playerController {
	return i.players[i.cycler.Peek()]
}

func (i *PlayerIterator) Next() *playerController {
	return i.players[i.cycler.Next()]
}

func (i *PlayerIterator) Direction() int {
	return i.cycler.Direction()
}

func (i *PlayerIterator) Reverse() int {
	i.cycler.Reverse()
	return i.cycler.Direction()
}

// ForEach visits the seats in seat order, not in turn order.
func (i *PlayerIterator) ForEach(function func(player *playerController)) {
	for _, player := range i.players {
		function(player)
	}
}

package components

import "github.com/yohamta/donburi"

type MenuData struct {
	Selected int
}

var Menu = donburi.NewComponentType[MenuData]()

package tags

import "github.com/yohamta/donburi"

var (
	Dot      = donburi.NewTag().SetName("Dot")
	Platform = donburi.NewTag().SetName("Platform")
)

// Resolv tags for collision proxies
const (
	ResolvDot      = "dot"
	ResolvPlatform = "platform"
)

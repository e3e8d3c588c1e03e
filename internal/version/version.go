package version

import (
	"fmt"
	"strconv"
	"time"
)

// Version is the application version. Can be overridden at build time via:
//
//	go build -ldflags "-X winsbygroup.com/lunchly/internal/version.Version=1.2.3"
var Version = "0.1"

// Banner prints identifying information about the server.
func Banner() string {
	y := strconv.Itoa(time.Now().Year())
	return fmt.Sprintf("%s\nLunchly (v%s)\nCopyright %s Winsby Group LLC.\n", logo, Version, y)
}

// http://patorjk.com/software/taag/#p=display&f=Standard&t=Lunchly
const logo = `
  _                      _     _       
 | |   _   _ _ __   ___| |__ | |_   _ 
 | |  | | | | '_ \ / __| '_ \| | | | |
 | |__| |_| | | | | (__| | | | | |_| |
 |_____\__,_|_| |_|\___|_| |_|_|\__, |
                                |___/
`

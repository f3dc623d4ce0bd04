// Package procutil provides process-spawning helpers shared by the
// network-control and notification layers. Currently exposes HideWindow,
// which prevents the console window flash on Windows when shelling out to
// ipconfig-class commands.
package procutil

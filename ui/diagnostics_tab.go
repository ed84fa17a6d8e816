package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"

	"warp-manager/core"
)

// createNetworkToolsSection creates the "Network Tools" block. None of these
// need warp-cli, so they stay enabled when it is missing.
func (a *App) createNetworkToolsSection() fyne.CanvasObject {
	steamButton := widget.NewButton("Check if Steam is Running", func() {
		a.core.CheckProcess(core.SteamTarget)
	})
	epicButton := widget.NewButton("Check if Epic Games is Running", func() {
		a.core.CheckProcess(core.EpicTarget)
	})
	dnsButton := widget.NewButton("Open DNS Leak Test", func() {
		if err := a.core.OpenDNSLeakTest(); err != nil {
			showError(a.window, err)
		}
	})

	traceButton := widget.NewButton("Check WARP Trace", func() {
		a.core.CheckTrace(false)
	})
	proxyTraceButton := widget.NewButton("Check WARP Proxy Trace", func() {
		a.core.CheckTrace(true)
	})
	stunButton := widget.NewButton("Check External IP (STUN)", a.core.CheckExternalIP)

	return section("Network Tools",
		steamButton,
		epicButton,
		dnsButton,
		widget.NewSeparator(),
		traceButton,
		proxyTraceButton,
		stunButton,
	)
}

package band

import "strings"

// Mode is an ADIF operating mode.
type Mode string

// ADIF modes.
const (
	ModeCW           Mode = "CW"
	ModeSSB          Mode = "SSB"
	ModeAM           Mode = "AM"
	ModeFM           Mode = "FM"
	ModePSK          Mode = "PSK"
	ModeRTTY         Mode = "RTTY"
	ModeMFSK         Mode = "MFSK"
	ModeOlivia       Mode = "OLIVIA"
	ModeJT65         Mode = "JT65"
	ModeJT9          Mode = "JT9"
	ModeFT8          Mode = "FT8"
	ModeHell         Mode = "HELL"
	ModeContestia    Mode = "CONTESTIA"
	ModeDomino       Mode = "DOMINO"
	ModeMT63         Mode = "MT63"
	ModeJT6M         Mode = "JT6M"
	ModeJTMSK        Mode = "JTMSK"
	ModeMSK144       Mode = "MSK144"
	ModeFSK441       Mode = "FSK441"
	ModeDigitalVoice Mode = "DIGITALVOICE"
	ModeDStar        Mode = "DSTAR"
	ModePacket       Mode = "PKT"
	ModeATV          Mode = "ATV"
	ModeSSTV         Mode = "SSTV"
	ModeChip         Mode = "CHIP"
	ModeTOR          Mode = "TOR"
	ModeJT4          Mode = "JT4"
	ModePAC          Mode = "PAC"
	ModePAX          Mode = "PAX"
	ModeTHRB         Mode = "THRB"
)

var knownModes = map[Mode]struct{}{
	ModeCW: {}, ModeSSB: {}, ModeAM: {}, ModeFM: {}, ModePSK: {}, ModeRTTY: {},
	ModeMFSK: {}, ModeOlivia: {}, ModeJT65: {}, ModeJT9: {}, ModeFT8: {},
	ModeHell: {}, ModeContestia: {}, ModeDomino: {}, ModeMT63: {}, ModeJT6M: {},
	ModeJTMSK: {}, ModeMSK144: {}, ModeFSK441: {}, ModeDigitalVoice: {},
	ModeDStar: {}, ModePacket: {}, ModeATV: {}, ModeSSTV: {}, ModeChip: {},
	ModeTOR: {}, ModeJT4: {}, ModePAC: {}, ModePAX: {}, ModeTHRB: {},
}

// legacyModes maps retired ADIF mode names and common sub-modes to the mode
// they are logged under today.
var legacyModes = map[string]Mode{
	"AMTORFEC": ModeTOR,
	"ASCI":     ModeRTTY,
	"CHIP64":   ModeChip,
	"CHIP128":  ModeChip,
	"DOMINOF":  ModeDomino,
	"FMHELL":   ModeHell,
	"FSK31":    ModePSK,
	"GTOR":     ModeTOR,
	"HELL80":   ModeHell,
	"HFSK":     ModeHell,
	"JT4A":     ModeJT4,
	"JT4B":     ModeJT4,
	"JT4C":     ModeJT4,
	"JT4D":     ModeJT4,
	"JT4E":     ModeJT4,
	"JT4F":     ModeJT4,
	"JT4G":     ModeJT4,
	"JT65A":    ModeJT65,
	"JT65B":    ModeJT65,
	"JT65C":    ModeJT65,
	"MFSK8":    ModeMFSK,
	"MFSK16":   ModeMFSK,
	"PAC2":     ModePAC,
	"PAC3":     ModePAC,
	"PAX2":     ModePAX,
	"PCW":      ModeCW,
	"PSK10":    ModePSK,
	"PSK31":    ModePSK,
	"PSK63":    ModePSK,
	"PSK63F":   ModePSK,
	"PSK125":   ModePSK,
	"PSKAM10":  ModePSK,
	"PSKAM31":  ModePSK,
	"PSKAM50":  ModePSK,
	"PSKFEC31": ModePSK,
	"PSKHELL":  ModeHell,
	"QPSK31":   ModePSK,
	"QPSK63":   ModePSK,
	"QPSK125":  ModePSK,
	"THRBX":    ModeTHRB,
	"USB":      ModeSSB,
	"LSB":      ModeSSB,
	"FT4":      ModeMFSK,
}

// ModeByName resolves a mode or legacy sub-mode name, case-insensitively.
func ModeByName(name string) (Mode, bool) {
	name = strings.ToUpper(strings.TrimSpace(name))
	if _, ok := knownModes[Mode(name)]; ok {
		return Mode(name), true
	}
	if m, ok := legacyModes[name]; ok {
		return m, true
	}
	return "", false
}

// DXCCMode is the award category a mode counts towards.
type DXCCMode string

// DXCC award mode categories.
const (
	DXCCModeCW      DXCCMode = "CW"
	DXCCModePhone   DXCCMode = "PHONE"
	DXCCModeDigital DXCCMode = "DIGITAL"
)

// DXCCMode returns the award category of the mode.
func (m Mode) DXCCMode() DXCCMode {
	switch m {
	case ModeCW:
		return DXCCModeCW
	case ModeSSB, ModeFM, ModeAM, ModeDigitalVoice, ModeDStar:
		return DXCCModePhone
	default:
		return DXCCModeDigital
	}
}

// DefaultReport returns the customary signal report for the mode, or an empty
// string when there is none.
func (m Mode) DefaultReport() string {
	switch m {
	case ModeCW, ModeRTTY:
		return "599"
	case ModeSSB, ModeAM, ModeFM:
		return "59"
	case ModeJT65, ModeJT9, ModeFT8:
		return "-1"
	default:
		return ""
	}
}

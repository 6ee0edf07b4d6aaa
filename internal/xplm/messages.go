package xplm

import "strconv"

// Message is an inter-plugin message code. Codes below 0x00FFFFFF are
// reserved for the simulator.
type Message int32

// Messages sent by X-Plane itself.
const (
	MsgPlaneCrashed         Message = 101
	MsgPlaneLoaded          Message = 102
	MsgAirportLoaded        Message = 103
	MsgSceneryLoaded        Message = 104
	MsgAirplaneCountChanged Message = 105
	MsgPlaneUnloaded        Message = 106
	MsgWillWritePrefs       Message = 107
	MsgLiveryLoaded         Message = 108
	MsgEnteredVR            Message = 109
	MsgExitingVR            Message = 110
	MsgReleasePlanes        Message = 111
	MsgFMODBankLoaded       Message = 112
	MsgFMODBankUnloading    Message = 113
	MsgDatarefsAdded        Message = 114
)

var messageNames = map[Message]string{
	MsgPlaneCrashed:         "XPLM_MSG_PLANE_CRASHED",
	MsgPlaneLoaded:          "XPLM_MSG_PLANE_LOADED",
	MsgAirportLoaded:        "XPLM_MSG_AIRPORT_LOADED",
	MsgSceneryLoaded:        "XPLM_MSG_SCENERY_LOADED",
	MsgAirplaneCountChanged: "XPLM_MSG_AIRPLANE_COUNT_CHANGED",
	MsgPlaneUnloaded:        "XPLM_MSG_PLANE_UNLOADED",
	MsgWillWritePrefs:       "XPLM_MSG_WILL_WRITE_PREFS",
	MsgLiveryLoaded:         "XPLM_MSG_LIVERY_LOADED",
	MsgEnteredVR:            "XPLM_MSG_ENTERED_VR",
	MsgExitingVR:            "XPLM_MSG_EXITING_VR",
	MsgReleasePlanes:        "XPLM_MSG_RELEASE_PLANES",
	MsgFMODBankLoaded:       "XPLM_MSG_FMOD_BANK_LOADED",
	MsgFMODBankUnloading:    "XPLM_MSG_FMOD_BANK_UNLOADING",
	MsgDatarefsAdded:        "XPLM_MSG_DATAREFS_ADDED",
}

// String returns the SDK constant name, or the decimal code for messages the
// simulator does not define.
func (m Message) String() string {
	if name, ok := messageNames[m]; ok {
		return name
	}
	return strconv.FormatInt(int64(m), 10)
}

// IsSimulator reports whether m falls in the range reserved for X-Plane.
func (m Message) IsSimulator() bool {
	return m >= 0 && m < 0x00FFFFFF
}

// ParseMessage accepts either an SDK constant name or a decimal code.
func ParseMessage(s string) (Message, error) {
	for code, name := range messageNames {
		if name == s {
			return code, nil
		}
	}
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, err
	}
	return Message(n), nil
}

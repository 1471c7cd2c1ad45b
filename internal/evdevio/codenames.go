//go:build linux

// codeNames maps a KEY_*/ABS_* kernel macro name to its evdev code and
// axis-vs-key kind, for capability_map YAML files that name a raw code
// by its kernel macro (e.g. "KEY_A", "ABS_X") instead of a bare integer.
package evdevio

var codeNames = map[string]struct {
	code  EventCode
	isAbs bool
}{
	"ABS_BRAKE": {code: EventCode(ABS_BRAKE), isAbs: true},
	"ABS_CNT": {code: EventCode(ABS_CNT), isAbs: true},
	"ABS_DISTANCE": {code: EventCode(ABS_DISTANCE), isAbs: true},
	"ABS_GAS": {code: EventCode(ABS_GAS), isAbs: true},
	"ABS_HAT0X": {code: EventCode(ABS_HAT0X), isAbs: true},
	"ABS_HAT0Y": {code: EventCode(ABS_HAT0Y), isAbs: true},
	"ABS_HAT1X": {code: EventCode(ABS_HAT1X), isAbs: true},
	"ABS_HAT1Y": {code: EventCode(ABS_HAT1Y), isAbs: true},
	"ABS_HAT2X": {code: EventCode(ABS_HAT2X), isAbs: true},
	"ABS_HAT2Y": {code: EventCode(ABS_HAT2Y), isAbs: true},
	"ABS_HAT3X": {code: EventCode(ABS_HAT3X), isAbs: true},
	"ABS_HAT3Y": {code: EventCode(ABS_HAT3Y), isAbs: true},
	"ABS_MAX": {code: EventCode(ABS_MAX), isAbs: true},
	"ABS_MISC": {code: EventCode(ABS_MISC), isAbs: true},
	"ABS_MT_BLOB_ID": {code: EventCode(ABS_MT_BLOB_ID), isAbs: true},
	"ABS_MT_DISTANCE": {code: EventCode(ABS_MT_DISTANCE), isAbs: true},
	"ABS_MT_ORIENTATION": {code: EventCode(ABS_MT_ORIENTATION), isAbs: true},
	"ABS_MT_POSITION_X": {code: EventCode(ABS_MT_POSITION_X), isAbs: true},
	"ABS_MT_POSITION_Y": {code: EventCode(ABS_MT_POSITION_Y), isAbs: true},
	"ABS_MT_PRESSURE": {code: EventCode(ABS_MT_PRESSURE), isAbs: true},
	"ABS_MT_SLOT": {code: EventCode(ABS_MT_SLOT), isAbs: true},
	"ABS_MT_TOOL_TYPE": {code: EventCode(ABS_MT_TOOL_TYPE), isAbs: true},
	"ABS_MT_TOOL_X": {code: EventCode(ABS_MT_TOOL_X), isAbs: true},
	"ABS_MT_TOOL_Y": {code: EventCode(ABS_MT_TOOL_Y), isAbs: true},
	"ABS_MT_TOUCH_MAJOR": {code: EventCode(ABS_MT_TOUCH_MAJOR), isAbs: true},
	"ABS_MT_TOUCH_MINOR": {code: EventCode(ABS_MT_TOUCH_MINOR), isAbs: true},
	"ABS_MT_TRACKING_ID": {code: EventCode(ABS_MT_TRACKING_ID), isAbs: true},
	"ABS_MT_WIDTH_MAJOR": {code: EventCode(ABS_MT_WIDTH_MAJOR), isAbs: true},
	"ABS_MT_WIDTH_MINOR": {code: EventCode(ABS_MT_WIDTH_MINOR), isAbs: true},
	"ABS_PRESSURE": {code: EventCode(ABS_PRESSURE), isAbs: true},
	"ABS_PROFILE": {code: EventCode(ABS_PROFILE), isAbs: true},
	"ABS_RESERVED": {code: EventCode(ABS_RESERVED), isAbs: true},
	"ABS_RUDDER": {code: EventCode(ABS_RUDDER), isAbs: true},
	"ABS_RX": {code: EventCode(ABS_RX), isAbs: true},
	"ABS_RY": {code: EventCode(ABS_RY), isAbs: true},
	"ABS_RZ": {code: EventCode(ABS_RZ), isAbs: true},
	"ABS_THROTTLE": {code: EventCode(ABS_THROTTLE), isAbs: true},
	"ABS_TILT_X": {code: EventCode(ABS_TILT_X), isAbs: true},
	"ABS_TILT_Y": {code: EventCode(ABS_TILT_Y), isAbs: true},
	"ABS_TOOL_WIDTH": {code: EventCode(ABS_TOOL_WIDTH), isAbs: true},
	"ABS_VOLUME": {code: EventCode(ABS_VOLUME), isAbs: true},
	"ABS_WHEEL": {code: EventCode(ABS_WHEEL), isAbs: true},
	"ABS_X": {code: EventCode(ABS_X), isAbs: true},
	"ABS_Y": {code: EventCode(ABS_Y), isAbs: true},
	"ABS_Z": {code: EventCode(ABS_Z), isAbs: true},
	"KEY_0": {code: EventCode(KEY_0), isAbs: false},
	"KEY_1": {code: EventCode(KEY_1), isAbs: false},
	"KEY_102ND": {code: EventCode(KEY_102ND), isAbs: false},
	"KEY_10CHANNELSDOWN": {code: EventCode(KEY_10CHANNELSDOWN), isAbs: false},
	"KEY_10CHANNELSUP": {code: EventCode(KEY_10CHANNELSUP), isAbs: false},
	"KEY_2": {code: EventCode(KEY_2), isAbs: false},
	"KEY_3": {code: EventCode(KEY_3), isAbs: false},
	"KEY_3D_MODE": {code: EventCode(KEY_3D_MODE), isAbs: false},
	"KEY_4": {code: EventCode(KEY_4), isAbs: false},
	"KEY_5": {code: EventCode(KEY_5), isAbs: false},
	"KEY_6": {code: EventCode(KEY_6), isAbs: false},
	"KEY_7": {code: EventCode(KEY_7), isAbs: false},
	"KEY_8": {code: EventCode(KEY_8), isAbs: false},
	"KEY_9": {code: EventCode(KEY_9), isAbs: false},
	"KEY_A": {code: EventCode(KEY_A), isAbs: false},
	"KEY_AB": {code: EventCode(KEY_AB), isAbs: false},
	"KEY_ACCESSIBILITY": {code: EventCode(KEY_ACCESSIBILITY), isAbs: false},
	"KEY_ADDRESSBOOK": {code: EventCode(KEY_ADDRESSBOOK), isAbs: false},
	"KEY_AGAIN": {code: EventCode(KEY_AGAIN), isAbs: false},
	"KEY_ALL_APPLICATIONS": {code: EventCode(KEY_ALL_APPLICATIONS), isAbs: false},
	"KEY_ALS_TOGGLE": {code: EventCode(KEY_ALS_TOGGLE), isAbs: false},
	"KEY_ALTERASE": {code: EventCode(KEY_ALTERASE), isAbs: false},
	"KEY_ANGLE": {code: EventCode(KEY_ANGLE), isAbs: false},
	"KEY_APOSTROPHE": {code: EventCode(KEY_APOSTROPHE), isAbs: false},
	"KEY_APPSELECT": {code: EventCode(KEY_APPSELECT), isAbs: false},
	"KEY_ARCHIVE": {code: EventCode(KEY_ARCHIVE), isAbs: false},
	"KEY_ASPECT_RATIO": {code: EventCode(KEY_ASPECT_RATIO), isAbs: false},
	"KEY_ASSISTANT": {code: EventCode(KEY_ASSISTANT), isAbs: false},
	"KEY_ATTENDANT_OFF": {code: EventCode(KEY_ATTENDANT_OFF), isAbs: false},
	"KEY_ATTENDANT_ON": {code: EventCode(KEY_ATTENDANT_ON), isAbs: false},
	"KEY_ATTENDANT_TOGGLE": {code: EventCode(KEY_ATTENDANT_TOGGLE), isAbs: false},
	"KEY_AUDIO": {code: EventCode(KEY_AUDIO), isAbs: false},
	"KEY_AUDIO_DESC": {code: EventCode(KEY_AUDIO_DESC), isAbs: false},
	"KEY_AUTOPILOT_ENGAGE_TOGGLE": {code: EventCode(KEY_AUTOPILOT_ENGAGE_TOGGLE), isAbs: false},
	"KEY_AUX": {code: EventCode(KEY_AUX), isAbs: false},
	"KEY_B": {code: EventCode(KEY_B), isAbs: false},
	"KEY_BACK": {code: EventCode(KEY_BACK), isAbs: false},
	"KEY_BACKSLASH": {code: EventCode(KEY_BACKSLASH), isAbs: false},
	"KEY_BACKSPACE": {code: EventCode(KEY_BACKSPACE), isAbs: false},
	"KEY_BASSBOOST": {code: EventCode(KEY_BASSBOOST), isAbs: false},
	"KEY_BATTERY": {code: EventCode(KEY_BATTERY), isAbs: false},
	"KEY_BLUE": {code: EventCode(KEY_BLUE), isAbs: false},
	"KEY_BLUETOOTH": {code: EventCode(KEY_BLUETOOTH), isAbs: false},
	"KEY_BOOKMARKS": {code: EventCode(KEY_BOOKMARKS), isAbs: false},
	"KEY_BREAK": {code: EventCode(KEY_BREAK), isAbs: false},
	"KEY_BRIGHTNESSDOWN": {code: EventCode(KEY_BRIGHTNESSDOWN), isAbs: false},
	"KEY_BRIGHTNESSUP": {code: EventCode(KEY_BRIGHTNESSUP), isAbs: false},
	"KEY_BRIGHTNESS_AUTO": {code: EventCode(KEY_BRIGHTNESS_AUTO), isAbs: false},
	"KEY_BRIGHTNESS_CYCLE": {code: EventCode(KEY_BRIGHTNESS_CYCLE), isAbs: false},
	"KEY_BRIGHTNESS_MAX": {code: EventCode(KEY_BRIGHTNESS_MAX), isAbs: false},
	"KEY_BRIGHTNESS_MENU": {code: EventCode(KEY_BRIGHTNESS_MENU), isAbs: false},
	"KEY_BRIGHTNESS_MIN": {code: EventCode(KEY_BRIGHTNESS_MIN), isAbs: false},
	"KEY_BRIGHTNESS_TOGGLE": {code: EventCode(KEY_BRIGHTNESS_TOGGLE), isAbs: false},
	"KEY_BRIGHTNESS_ZERO": {code: EventCode(KEY_BRIGHTNESS_ZERO), isAbs: false},
	"KEY_BRL_DOT1": {code: EventCode(KEY_BRL_DOT1), isAbs: false},
	"KEY_BRL_DOT10": {code: EventCode(KEY_BRL_DOT10), isAbs: false},
	"KEY_BRL_DOT2": {code: EventCode(KEY_BRL_DOT2), isAbs: false},
	"KEY_BRL_DOT3": {code: EventCode(KEY_BRL_DOT3), isAbs: false},
	"KEY_BRL_DOT4": {code: EventCode(KEY_BRL_DOT4), isAbs: false},
	"KEY_BRL_DOT5": {code: EventCode(KEY_BRL_DOT5), isAbs: false},
	"KEY_BRL_DOT6": {code: EventCode(KEY_BRL_DOT6), isAbs: false},
	"KEY_BRL_DOT7": {code: EventCode(KEY_BRL_DOT7), isAbs: false},
	"KEY_BRL_DOT8": {code: EventCode(KEY_BRL_DOT8), isAbs: false},
	"KEY_BRL_DOT9": {code: EventCode(KEY_BRL_DOT9), isAbs: false},
	"KEY_BUTTONCONFIG": {code: EventCode(KEY_BUTTONCONFIG), isAbs: false},
	"KEY_C": {code: EventCode(KEY_C), isAbs: false},
	"KEY_CALC": {code: EventCode(KEY_CALC), isAbs: false},
	"KEY_CALENDAR": {code: EventCode(KEY_CALENDAR), isAbs: false},
	"KEY_CAMERA": {code: EventCode(KEY_CAMERA), isAbs: false},
	"KEY_CAMERA_ACCESS_DISABLE": {code: EventCode(KEY_CAMERA_ACCESS_DISABLE), isAbs: false},
	"KEY_CAMERA_ACCESS_ENABLE": {code: EventCode(KEY_CAMERA_ACCESS_ENABLE), isAbs: false},
	"KEY_CAMERA_ACCESS_TOGGLE": {code: EventCode(KEY_CAMERA_ACCESS_TOGGLE), isAbs: false},
	"KEY_CAMERA_DOWN": {code: EventCode(KEY_CAMERA_DOWN), isAbs: false},
	"KEY_CAMERA_FOCUS": {code: EventCode(KEY_CAMERA_FOCUS), isAbs: false},
	"KEY_CAMERA_LEFT": {code: EventCode(KEY_CAMERA_LEFT), isAbs: false},
	"KEY_CAMERA_RIGHT": {code: EventCode(KEY_CAMERA_RIGHT), isAbs: false},
	"KEY_CAMERA_UP": {code: EventCode(KEY_CAMERA_UP), isAbs: false},
	"KEY_CAMERA_ZOOMIN": {code: EventCode(KEY_CAMERA_ZOOMIN), isAbs: false},
	"KEY_CAMERA_ZOOMOUT": {code: EventCode(KEY_CAMERA_ZOOMOUT), isAbs: false},
	"KEY_CANCEL": {code: EventCode(KEY_CANCEL), isAbs: false},
	"KEY_CAPSLOCK": {code: EventCode(KEY_CAPSLOCK), isAbs: false},
	"KEY_CD": {code: EventCode(KEY_CD), isAbs: false},
	"KEY_CHANNEL": {code: EventCode(KEY_CHANNEL), isAbs: false},
	"KEY_CHANNELDOWN": {code: EventCode(KEY_CHANNELDOWN), isAbs: false},
	"KEY_CHANNELUP": {code: EventCode(KEY_CHANNELUP), isAbs: false},
	"KEY_CHAT": {code: EventCode(KEY_CHAT), isAbs: false},
	"KEY_CLEAR": {code: EventCode(KEY_CLEAR), isAbs: false},
	"KEY_CLEARVU_SONAR": {code: EventCode(KEY_CLEARVU_SONAR), isAbs: false},
	"KEY_CLOSE": {code: EventCode(KEY_CLOSE), isAbs: false},
	"KEY_CLOSECD": {code: EventCode(KEY_CLOSECD), isAbs: false},
	"KEY_CNT": {code: EventCode(KEY_CNT), isAbs: false},
	"KEY_COFFEE": {code: EventCode(KEY_COFFEE), isAbs: false},
	"KEY_COMMA": {code: EventCode(KEY_COMMA), isAbs: false},
	"KEY_COMPOSE": {code: EventCode(KEY_COMPOSE), isAbs: false},
	"KEY_COMPUTER": {code: EventCode(KEY_COMPUTER), isAbs: false},
	"KEY_CONFIG": {code: EventCode(KEY_CONFIG), isAbs: false},
	"KEY_CONNECT": {code: EventCode(KEY_CONNECT), isAbs: false},
	"KEY_CONTEXT_MENU": {code: EventCode(KEY_CONTEXT_MENU), isAbs: false},
	"KEY_CONTROLPANEL": {code: EventCode(KEY_CONTROLPANEL), isAbs: false},
	"KEY_COPY": {code: EventCode(KEY_COPY), isAbs: false},
	"KEY_CUT": {code: EventCode(KEY_CUT), isAbs: false},
	"KEY_CYCLEWINDOWS": {code: EventCode(KEY_CYCLEWINDOWS), isAbs: false},
	"KEY_D": {code: EventCode(KEY_D), isAbs: false},
	"KEY_DASHBOARD": {code: EventCode(KEY_DASHBOARD), isAbs: false},
	"KEY_DATA": {code: EventCode(KEY_DATA), isAbs: false},
	"KEY_DATABASE": {code: EventCode(KEY_DATABASE), isAbs: false},
	"KEY_DELETE": {code: EventCode(KEY_DELETE), isAbs: false},
	"KEY_DELETEFILE": {code: EventCode(KEY_DELETEFILE), isAbs: false},
	"KEY_DEL_EOL": {code: EventCode(KEY_DEL_EOL), isAbs: false},
	"KEY_DEL_EOS": {code: EventCode(KEY_DEL_EOS), isAbs: false},
	"KEY_DEL_LINE": {code: EventCode(KEY_DEL_LINE), isAbs: false},
	"KEY_DICTATE": {code: EventCode(KEY_DICTATE), isAbs: false},
	"KEY_DIGITS": {code: EventCode(KEY_DIGITS), isAbs: false},
	"KEY_DIRECTION": {code: EventCode(KEY_DIRECTION), isAbs: false},
	"KEY_DIRECTORY": {code: EventCode(KEY_DIRECTORY), isAbs: false},
	"KEY_DISPLAYTOGGLE": {code: EventCode(KEY_DISPLAYTOGGLE), isAbs: false},
	"KEY_DISPLAY_OFF": {code: EventCode(KEY_DISPLAY_OFF), isAbs: false},
	"KEY_DOCUMENTS": {code: EventCode(KEY_DOCUMENTS), isAbs: false},
	"KEY_DOLLAR": {code: EventCode(KEY_DOLLAR), isAbs: false},
	"KEY_DOT": {code: EventCode(KEY_DOT), isAbs: false},
	"KEY_DOWN": {code: EventCode(KEY_DOWN), isAbs: false},
	"KEY_DO_NOT_DISTURB": {code: EventCode(KEY_DO_NOT_DISTURB), isAbs: false},
	"KEY_DUAL_RANGE_RADAR": {code: EventCode(KEY_DUAL_RANGE_RADAR), isAbs: false},
	"KEY_DVD": {code: EventCode(KEY_DVD), isAbs: false},
	"KEY_E": {code: EventCode(KEY_E), isAbs: false},
	"KEY_EDIT": {code: EventCode(KEY_EDIT), isAbs: false},
	"KEY_EDITOR": {code: EventCode(KEY_EDITOR), isAbs: false},
	"KEY_EJECTCD": {code: EventCode(KEY_EJECTCD), isAbs: false},
	"KEY_EJECTCLOSECD": {code: EventCode(KEY_EJECTCLOSECD), isAbs: false},
	"KEY_EMAIL": {code: EventCode(KEY_EMAIL), isAbs: false},
	"KEY_EMOJI_PICKER": {code: EventCode(KEY_EMOJI_PICKER), isAbs: false},
	"KEY_END": {code: EventCode(KEY_END), isAbs: false},
	"KEY_ENTER": {code: EventCode(KEY_ENTER), isAbs: false},
	"KEY_EPG": {code: EventCode(KEY_EPG), isAbs: false},
	"KEY_EQUAL": {code: EventCode(KEY_EQUAL), isAbs: false},
	"KEY_ESC": {code: EventCode(KEY_ESC), isAbs: false},
	"KEY_EURO": {code: EventCode(KEY_EURO), isAbs: false},
	"KEY_EXIT": {code: EventCode(KEY_EXIT), isAbs: false},
	"KEY_F": {code: EventCode(KEY_F), isAbs: false},
	"KEY_F1": {code: EventCode(KEY_F1), isAbs: false},
	"KEY_F10": {code: EventCode(KEY_F10), isAbs: false},
	"KEY_F11": {code: EventCode(KEY_F11), isAbs: false},
	"KEY_F12": {code: EventCode(KEY_F12), isAbs: false},
	"KEY_F13": {code: EventCode(KEY_F13), isAbs: false},
	"KEY_F14": {code: EventCode(KEY_F14), isAbs: false},
	"KEY_F15": {code: EventCode(KEY_F15), isAbs: false},
	"KEY_F16": {code: EventCode(KEY_F16), isAbs: false},
	"KEY_F17": {code: EventCode(KEY_F17), isAbs: false},
	"KEY_F18": {code: EventCode(KEY_F18), isAbs: false},
	"KEY_F19": {code: EventCode(KEY_F19), isAbs: false},
	"KEY_F2": {code: EventCode(KEY_F2), isAbs: false},
	"KEY_F20": {code: EventCode(KEY_F20), isAbs: false},
	"KEY_F21": {code: EventCode(KEY_F21), isAbs: false},
	"KEY_F22": {code: EventCode(KEY_F22), isAbs: false},
	"KEY_F23": {code: EventCode(KEY_F23), isAbs: false},
	"KEY_F24": {code: EventCode(KEY_F24), isAbs: false},
	"KEY_F3": {code: EventCode(KEY_F3), isAbs: false},
	"KEY_F4": {code: EventCode(KEY_F4), isAbs: false},
	"KEY_F5": {code: EventCode(KEY_F5), isAbs: false},
	"KEY_F6": {code: EventCode(KEY_F6), isAbs: false},
	"KEY_F7": {code: EventCode(KEY_F7), isAbs: false},
	"KEY_F8": {code: EventCode(KEY_F8), isAbs: false},
	"KEY_F9": {code: EventCode(KEY_F9), isAbs: false},
	"KEY_FASTFORWARD": {code: EventCode(KEY_FASTFORWARD), isAbs: false},
	"KEY_FASTREVERSE": {code: EventCode(KEY_FASTREVERSE), isAbs: false},
	"KEY_FAVORITES": {code: EventCode(KEY_FAVORITES), isAbs: false},
	"KEY_FILE": {code: EventCode(KEY_FILE), isAbs: false},
	"KEY_FINANCE": {code: EventCode(KEY_FINANCE), isAbs: false},
	"KEY_FIND": {code: EventCode(KEY_FIND), isAbs: false},
	"KEY_FIRST": {code: EventCode(KEY_FIRST), isAbs: false},
	"KEY_FISHING_CHART": {code: EventCode(KEY_FISHING_CHART), isAbs: false},
	"KEY_FN": {code: EventCode(KEY_FN), isAbs: false},
	"KEY_FN_1": {code: EventCode(KEY_FN_1), isAbs: false},
	"KEY_FN_2": {code: EventCode(KEY_FN_2), isAbs: false},
	"KEY_FN_B": {code: EventCode(KEY_FN_B), isAbs: false},
	"KEY_FN_D": {code: EventCode(KEY_FN_D), isAbs: false},
	"KEY_FN_E": {code: EventCode(KEY_FN_E), isAbs: false},
	"KEY_FN_ESC": {code: EventCode(KEY_FN_ESC), isAbs: false},
	"KEY_FN_F": {code: EventCode(KEY_FN_F), isAbs: false},
	"KEY_FN_F1": {code: EventCode(KEY_FN_F1), isAbs: false},
	"KEY_FN_F10": {code: EventCode(KEY_FN_F10), isAbs: false},
	"KEY_FN_F11": {code: EventCode(KEY_FN_F11), isAbs: false},
	"KEY_FN_F12": {code: EventCode(KEY_FN_F12), isAbs: false},
	"KEY_FN_F2": {code: EventCode(KEY_FN_F2), isAbs: false},
	"KEY_FN_F3": {code: EventCode(KEY_FN_F3), isAbs: false},
	"KEY_FN_F4": {code: EventCode(KEY_FN_F4), isAbs: false},
	"KEY_FN_F5": {code: EventCode(KEY_FN_F5), isAbs: false},
	"KEY_FN_F6": {code: EventCode(KEY_FN_F6), isAbs: false},
	"KEY_FN_F7": {code: EventCode(KEY_FN_F7), isAbs: false},
	"KEY_FN_F8": {code: EventCode(KEY_FN_F8), isAbs: false},
	"KEY_FN_F9": {code: EventCode(KEY_FN_F9), isAbs: false},
	"KEY_FN_RIGHT_SHIFT": {code: EventCode(KEY_FN_RIGHT_SHIFT), isAbs: false},
	"KEY_FN_S": {code: EventCode(KEY_FN_S), isAbs: false},
	"KEY_FORWARD": {code: EventCode(KEY_FORWARD), isAbs: false},
	"KEY_FORWARDMAIL": {code: EventCode(KEY_FORWARDMAIL), isAbs: false},
	"KEY_FRAMEBACK": {code: EventCode(KEY_FRAMEBACK), isAbs: false},
	"KEY_FRAMEFORWARD": {code: EventCode(KEY_FRAMEFORWARD), isAbs: false},
	"KEY_FRONT": {code: EventCode(KEY_FRONT), isAbs: false},
	"KEY_FULL_SCREEN": {code: EventCode(KEY_FULL_SCREEN), isAbs: false},
	"KEY_G": {code: EventCode(KEY_G), isAbs: false},
	"KEY_GAMES": {code: EventCode(KEY_GAMES), isAbs: false},
	"KEY_GOTO": {code: EventCode(KEY_GOTO), isAbs: false},
	"KEY_GRAPHICSEDITOR": {code: EventCode(KEY_GRAPHICSEDITOR), isAbs: false},
	"KEY_GRAVE": {code: EventCode(KEY_GRAVE), isAbs: false},
	"KEY_GREEN": {code: EventCode(KEY_GREEN), isAbs: false},
	"KEY_H": {code: EventCode(KEY_H), isAbs: false},
	"KEY_HANGEUL": {code: EventCode(KEY_HANGEUL), isAbs: false},
	"KEY_HANGUEL": {code: EventCode(KEY_HANGUEL), isAbs: false},
	"KEY_HANGUP_PHONE": {code: EventCode(KEY_HANGUP_PHONE), isAbs: false},
	"KEY_HANJA": {code: EventCode(KEY_HANJA), isAbs: false},
	"KEY_HELP": {code: EventCode(KEY_HELP), isAbs: false},
	"KEY_HENKAN": {code: EventCode(KEY_HENKAN), isAbs: false},
	"KEY_HIRAGANA": {code: EventCode(KEY_HIRAGANA), isAbs: false},
	"KEY_HOME": {code: EventCode(KEY_HOME), isAbs: false},
	"KEY_HOMEPAGE": {code: EventCode(KEY_HOMEPAGE), isAbs: false},
	"KEY_HP": {code: EventCode(KEY_HP), isAbs: false},
	"KEY_I": {code: EventCode(KEY_I), isAbs: false},
	"KEY_IMAGES": {code: EventCode(KEY_IMAGES), isAbs: false},
	"KEY_INFO": {code: EventCode(KEY_INFO), isAbs: false},
	"KEY_INSERT": {code: EventCode(KEY_INSERT), isAbs: false},
	"KEY_INS_LINE": {code: EventCode(KEY_INS_LINE), isAbs: false},
	"KEY_ISO": {code: EventCode(KEY_ISO), isAbs: false},
	"KEY_J": {code: EventCode(KEY_J), isAbs: false},
	"KEY_JOURNAL": {code: EventCode(KEY_JOURNAL), isAbs: false},
	"KEY_K": {code: EventCode(KEY_K), isAbs: false},
	"KEY_KATAKANA": {code: EventCode(KEY_KATAKANA), isAbs: false},
	"KEY_KATAKANAHIRAGANA": {code: EventCode(KEY_KATAKANAHIRAGANA), isAbs: false},
	"KEY_KBDILLUMDOWN": {code: EventCode(KEY_KBDILLUMDOWN), isAbs: false},
	"KEY_KBDILLUMTOGGLE": {code: EventCode(KEY_KBDILLUMTOGGLE), isAbs: false},
	"KEY_KBDILLUMUP": {code: EventCode(KEY_KBDILLUMUP), isAbs: false},
	"KEY_KBDINPUTASSIST_ACCEPT": {code: EventCode(KEY_KBDINPUTASSIST_ACCEPT), isAbs: false},
	"KEY_KBDINPUTASSIST_CANCEL": {code: EventCode(KEY_KBDINPUTASSIST_CANCEL), isAbs: false},
	"KEY_KBDINPUTASSIST_NEXT": {code: EventCode(KEY_KBDINPUTASSIST_NEXT), isAbs: false},
	"KEY_KBDINPUTASSIST_NEXTGROUP": {code: EventCode(KEY_KBDINPUTASSIST_NEXTGROUP), isAbs: false},
	"KEY_KBDINPUTASSIST_PREV": {code: EventCode(KEY_KBDINPUTASSIST_PREV), isAbs: false},
	"KEY_KBDINPUTASSIST_PREVGROUP": {code: EventCode(KEY_KBDINPUTASSIST_PREVGROUP), isAbs: false},
	"KEY_KBD_LAYOUT_NEXT": {code: EventCode(KEY_KBD_LAYOUT_NEXT), isAbs: false},
	"KEY_KBD_LCD_MENU1": {code: EventCode(KEY_KBD_LCD_MENU1), isAbs: false},
	"KEY_KBD_LCD_MENU2": {code: EventCode(KEY_KBD_LCD_MENU2), isAbs: false},
	"KEY_KBD_LCD_MENU3": {code: EventCode(KEY_KBD_LCD_MENU3), isAbs: false},
	"KEY_KBD_LCD_MENU4": {code: EventCode(KEY_KBD_LCD_MENU4), isAbs: false},
	"KEY_KBD_LCD_MENU5": {code: EventCode(KEY_KBD_LCD_MENU5), isAbs: false},
	"KEY_KEYBOARD": {code: EventCode(KEY_KEYBOARD), isAbs: false},
	"KEY_KP0": {code: EventCode(KEY_KP0), isAbs: false},
	"KEY_KP1": {code: EventCode(KEY_KP1), isAbs: false},
	"KEY_KP2": {code: EventCode(KEY_KP2), isAbs: false},
	"KEY_KP3": {code: EventCode(KEY_KP3), isAbs: false},
	"KEY_KP4": {code: EventCode(KEY_KP4), isAbs: false},
	"KEY_KP5": {code: EventCode(KEY_KP5), isAbs: false},
	"KEY_KP6": {code: EventCode(KEY_KP6), isAbs: false},
	"KEY_KP7": {code: EventCode(KEY_KP7), isAbs: false},
	"KEY_KP8": {code: EventCode(KEY_KP8), isAbs: false},
	"KEY_KP9": {code: EventCode(KEY_KP9), isAbs: false},
	"KEY_KPASTERISK": {code: EventCode(KEY_KPASTERISK), isAbs: false},
	"KEY_KPCOMMA": {code: EventCode(KEY_KPCOMMA), isAbs: false},
	"KEY_KPDOT": {code: EventCode(KEY_KPDOT), isAbs: false},
	"KEY_KPENTER": {code: EventCode(KEY_KPENTER), isAbs: false},
	"KEY_KPEQUAL": {code: EventCode(KEY_KPEQUAL), isAbs: false},
	"KEY_KPJPCOMMA": {code: EventCode(KEY_KPJPCOMMA), isAbs: false},
	"KEY_KPLEFTPAREN": {code: EventCode(KEY_KPLEFTPAREN), isAbs: false},
	"KEY_KPMINUS": {code: EventCode(KEY_KPMINUS), isAbs: false},
	"KEY_KPPLUS": {code: EventCode(KEY_KPPLUS), isAbs: false},
	"KEY_KPPLUSMINUS": {code: EventCode(KEY_KPPLUSMINUS), isAbs: false},
	"KEY_KPRIGHTPAREN": {code: EventCode(KEY_KPRIGHTPAREN), isAbs: false},
	"KEY_KPSLASH": {code: EventCode(KEY_KPSLASH), isAbs: false},
	"KEY_L": {code: EventCode(KEY_L), isAbs: false},
	"KEY_LANGUAGE": {code: EventCode(KEY_LANGUAGE), isAbs: false},
	"KEY_LAST": {code: EventCode(KEY_LAST), isAbs: false},
	"KEY_LEFT": {code: EventCode(KEY_LEFT), isAbs: false},
	"KEY_LEFTALT": {code: EventCode(KEY_LEFTALT), isAbs: false},
	"KEY_LEFTBRACE": {code: EventCode(KEY_LEFTBRACE), isAbs: false},
	"KEY_LEFTCTRL": {code: EventCode(KEY_LEFTCTRL), isAbs: false},
	"KEY_LEFTMETA": {code: EventCode(KEY_LEFTMETA), isAbs: false},
	"KEY_LEFTSHIFT": {code: EventCode(KEY_LEFTSHIFT), isAbs: false},
	"KEY_LEFT_DOWN": {code: EventCode(KEY_LEFT_DOWN), isAbs: false},
	"KEY_LEFT_UP": {code: EventCode(KEY_LEFT_UP), isAbs: false},
	"KEY_LIGHTS_TOGGLE": {code: EventCode(KEY_LIGHTS_TOGGLE), isAbs: false},
	"KEY_LINEFEED": {code: EventCode(KEY_LINEFEED), isAbs: false},
	"KEY_LINK_PHONE": {code: EventCode(KEY_LINK_PHONE), isAbs: false},
	"KEY_LIST": {code: EventCode(KEY_LIST), isAbs: false},
	"KEY_LOGOFF": {code: EventCode(KEY_LOGOFF), isAbs: false},
	"KEY_M": {code: EventCode(KEY_M), isAbs: false},
	"KEY_MACRO": {code: EventCode(KEY_MACRO), isAbs: false},
	"KEY_MACRO1": {code: EventCode(KEY_MACRO1), isAbs: false},
	"KEY_MACRO10": {code: EventCode(KEY_MACRO10), isAbs: false},
	"KEY_MACRO11": {code: EventCode(KEY_MACRO11), isAbs: false},
	"KEY_MACRO12": {code: EventCode(KEY_MACRO12), isAbs: false},
	"KEY_MACRO13": {code: EventCode(KEY_MACRO13), isAbs: false},
	"KEY_MACRO14": {code: EventCode(KEY_MACRO14), isAbs: false},
	"KEY_MACRO15": {code: EventCode(KEY_MACRO15), isAbs: false},
	"KEY_MACRO16": {code: EventCode(KEY_MACRO16), isAbs: false},
	"KEY_MACRO17": {code: EventCode(KEY_MACRO17), isAbs: false},
	"KEY_MACRO18": {code: EventCode(KEY_MACRO18), isAbs: false},
	"KEY_MACRO19": {code: EventCode(KEY_MACRO19), isAbs: false},
	"KEY_MACRO2": {code: EventCode(KEY_MACRO2), isAbs: false},
	"KEY_MACRO20": {code: EventCode(KEY_MACRO20), isAbs: false},
	"KEY_MACRO21": {code: EventCode(KEY_MACRO21), isAbs: false},
	"KEY_MACRO22": {code: EventCode(KEY_MACRO22), isAbs: false},
	"KEY_MACRO23": {code: EventCode(KEY_MACRO23), isAbs: false},
	"KEY_MACRO24": {code: EventCode(KEY_MACRO24), isAbs: false},
	"KEY_MACRO25": {code: EventCode(KEY_MACRO25), isAbs: false},
	"KEY_MACRO26": {code: EventCode(KEY_MACRO26), isAbs: false},
	"KEY_MACRO27": {code: EventCode(KEY_MACRO27), isAbs: false},
	"KEY_MACRO28": {code: EventCode(KEY_MACRO28), isAbs: false},
	"KEY_MACRO29": {code: EventCode(KEY_MACRO29), isAbs: false},
	"KEY_MACRO3": {code: EventCode(KEY_MACRO3), isAbs: false},
	"KEY_MACRO30": {code: EventCode(KEY_MACRO30), isAbs: false},
	"KEY_MACRO4": {code: EventCode(KEY_MACRO4), isAbs: false},
	"KEY_MACRO5": {code: EventCode(KEY_MACRO5), isAbs: false},
	"KEY_MACRO6": {code: EventCode(KEY_MACRO6), isAbs: false},
	"KEY_MACRO7": {code: EventCode(KEY_MACRO7), isAbs: false},
	"KEY_MACRO8": {code: EventCode(KEY_MACRO8), isAbs: false},
	"KEY_MACRO9": {code: EventCode(KEY_MACRO9), isAbs: false},
	"KEY_MACRO_PRESET1": {code: EventCode(KEY_MACRO_PRESET1), isAbs: false},
	"KEY_MACRO_PRESET2": {code: EventCode(KEY_MACRO_PRESET2), isAbs: false},
	"KEY_MACRO_PRESET3": {code: EventCode(KEY_MACRO_PRESET3), isAbs: false},
	"KEY_MACRO_PRESET_CYCLE": {code: EventCode(KEY_MACRO_PRESET_CYCLE), isAbs: false},
	"KEY_MACRO_RECORD_START": {code: EventCode(KEY_MACRO_RECORD_START), isAbs: false},
	"KEY_MACRO_RECORD_STOP": {code: EventCode(KEY_MACRO_RECORD_STOP), isAbs: false},
	"KEY_MAIL": {code: EventCode(KEY_MAIL), isAbs: false},
	"KEY_MARK_WAYPOINT": {code: EventCode(KEY_MARK_WAYPOINT), isAbs: false},
	"KEY_MAX": {code: EventCode(KEY_MAX), isAbs: false},
	"KEY_MEDIA": {code: EventCode(KEY_MEDIA), isAbs: false},
	"KEY_MEDIA_REPEAT": {code: EventCode(KEY_MEDIA_REPEAT), isAbs: false},
	"KEY_MEDIA_TOP_MENU": {code: EventCode(KEY_MEDIA_TOP_MENU), isAbs: false},
	"KEY_MEMO": {code: EventCode(KEY_MEMO), isAbs: false},
	"KEY_MENU": {code: EventCode(KEY_MENU), isAbs: false},
	"KEY_MESSENGER": {code: EventCode(KEY_MESSENGER), isAbs: false},
	"KEY_MHP": {code: EventCode(KEY_MHP), isAbs: false},
	"KEY_MICMUTE": {code: EventCode(KEY_MICMUTE), isAbs: false},
	"KEY_MINUS": {code: EventCode(KEY_MINUS), isAbs: false},
	"KEY_MIN_INTERESTING": {code: EventCode(KEY_MIN_INTERESTING), isAbs: false},
	"KEY_MODE": {code: EventCode(KEY_MODE), isAbs: false},
	"KEY_MOVE": {code: EventCode(KEY_MOVE), isAbs: false},
	"KEY_MP3": {code: EventCode(KEY_MP3), isAbs: false},
	"KEY_MSDOS": {code: EventCode(KEY_MSDOS), isAbs: false},
	"KEY_MUHENKAN": {code: EventCode(KEY_MUHENKAN), isAbs: false},
	"KEY_MUTE": {code: EventCode(KEY_MUTE), isAbs: false},
	"KEY_N": {code: EventCode(KEY_N), isAbs: false},
	"KEY_NAV_CHART": {code: EventCode(KEY_NAV_CHART), isAbs: false},
	"KEY_NAV_INFO": {code: EventCode(KEY_NAV_INFO), isAbs: false},
	"KEY_NEW": {code: EventCode(KEY_NEW), isAbs: false},
	"KEY_NEWS": {code: EventCode(KEY_NEWS), isAbs: false},
	"KEY_NEXT": {code: EventCode(KEY_NEXT), isAbs: false},
	"KEY_NEXTSONG": {code: EventCode(KEY_NEXTSONG), isAbs: false},
	"KEY_NEXT_ELEMENT": {code: EventCode(KEY_NEXT_ELEMENT), isAbs: false},
	"KEY_NEXT_FAVORITE": {code: EventCode(KEY_NEXT_FAVORITE), isAbs: false},
	"KEY_NOTIFICATION_CENTER": {code: EventCode(KEY_NOTIFICATION_CENTER), isAbs: false},
	"KEY_NUMERIC_0": {code: EventCode(KEY_NUMERIC_0), isAbs: false},
	"KEY_NUMERIC_1": {code: EventCode(KEY_NUMERIC_1), isAbs: false},
	"KEY_NUMERIC_11": {code: EventCode(KEY_NUMERIC_11), isAbs: false},
	"KEY_NUMERIC_12": {code: EventCode(KEY_NUMERIC_12), isAbs: false},
	"KEY_NUMERIC_2": {code: EventCode(KEY_NUMERIC_2), isAbs: false},
	"KEY_NUMERIC_3": {code: EventCode(KEY_NUMERIC_3), isAbs: false},
	"KEY_NUMERIC_4": {code: EventCode(KEY_NUMERIC_4), isAbs: false},
	"KEY_NUMERIC_5": {code: EventCode(KEY_NUMERIC_5), isAbs: false},
	"KEY_NUMERIC_6": {code: EventCode(KEY_NUMERIC_6), isAbs: false},
	"KEY_NUMERIC_7": {code: EventCode(KEY_NUMERIC_7), isAbs: false},
	"KEY_NUMERIC_8": {code: EventCode(KEY_NUMERIC_8), isAbs: false},
	"KEY_NUMERIC_9": {code: EventCode(KEY_NUMERIC_9), isAbs: false},
	"KEY_NUMERIC_A": {code: EventCode(KEY_NUMERIC_A), isAbs: false},
	"KEY_NUMERIC_B": {code: EventCode(KEY_NUMERIC_B), isAbs: false},
	"KEY_NUMERIC_C": {code: EventCode(KEY_NUMERIC_C), isAbs: false},
	"KEY_NUMERIC_D": {code: EventCode(KEY_NUMERIC_D), isAbs: false},
	"KEY_NUMERIC_POUND": {code: EventCode(KEY_NUMERIC_POUND), isAbs: false},
	"KEY_NUMERIC_STAR": {code: EventCode(KEY_NUMERIC_STAR), isAbs: false},
	"KEY_NUMLOCK": {code: EventCode(KEY_NUMLOCK), isAbs: false},
	"KEY_O": {code: EventCode(KEY_O), isAbs: false},
	"KEY_OK": {code: EventCode(KEY_OK), isAbs: false},
	"KEY_ONSCREEN_KEYBOARD": {code: EventCode(KEY_ONSCREEN_KEYBOARD), isAbs: false},
	"KEY_OPEN": {code: EventCode(KEY_OPEN), isAbs: false},
	"KEY_OPTION": {code: EventCode(KEY_OPTION), isAbs: false},
	"KEY_P": {code: EventCode(KEY_P), isAbs: false},
	"KEY_PAGEDOWN": {code: EventCode(KEY_PAGEDOWN), isAbs: false},
	"KEY_PAGEUP": {code: EventCode(KEY_PAGEUP), isAbs: false},
	"KEY_PASTE": {code: EventCode(KEY_PASTE), isAbs: false},
	"KEY_PAUSE": {code: EventCode(KEY_PAUSE), isAbs: false},
	"KEY_PAUSECD": {code: EventCode(KEY_PAUSECD), isAbs: false},
	"KEY_PAUSE_RECORD": {code: EventCode(KEY_PAUSE_RECORD), isAbs: false},
	"KEY_PC": {code: EventCode(KEY_PC), isAbs: false},
	"KEY_PHONE": {code: EventCode(KEY_PHONE), isAbs: false},
	"KEY_PICKUP_PHONE": {code: EventCode(KEY_PICKUP_PHONE), isAbs: false},
	"KEY_PLAY": {code: EventCode(KEY_PLAY), isAbs: false},
	"KEY_PLAYCD": {code: EventCode(KEY_PLAYCD), isAbs: false},
	"KEY_PLAYER": {code: EventCode(KEY_PLAYER), isAbs: false},
	"KEY_PLAYPAUSE": {code: EventCode(KEY_PLAYPAUSE), isAbs: false},
	"KEY_POWER": {code: EventCode(KEY_POWER), isAbs: false},
	"KEY_POWER2": {code: EventCode(KEY_POWER2), isAbs: false},
	"KEY_PRESENTATION": {code: EventCode(KEY_PRESENTATION), isAbs: false},
	"KEY_PREVIOUS": {code: EventCode(KEY_PREVIOUS), isAbs: false},
	"KEY_PREVIOUSSONG": {code: EventCode(KEY_PREVIOUSSONG), isAbs: false},
	"KEY_PREVIOUS_ELEMENT": {code: EventCode(KEY_PREVIOUS_ELEMENT), isAbs: false},
	"KEY_PRINT": {code: EventCode(KEY_PRINT), isAbs: false},
	"KEY_PRIVACY_SCREEN_TOGGLE": {code: EventCode(KEY_PRIVACY_SCREEN_TOGGLE), isAbs: false},
	"KEY_PROG1": {code: EventCode(KEY_PROG1), isAbs: false},
	"KEY_PROG2": {code: EventCode(KEY_PROG2), isAbs: false},
	"KEY_PROG3": {code: EventCode(KEY_PROG3), isAbs: false},
	"KEY_PROG4": {code: EventCode(KEY_PROG4), isAbs: false},
	"KEY_PROGRAM": {code: EventCode(KEY_PROGRAM), isAbs: false},
	"KEY_PROPS": {code: EventCode(KEY_PROPS), isAbs: false},
	"KEY_PVR": {code: EventCode(KEY_PVR), isAbs: false},
	"KEY_Q": {code: EventCode(KEY_Q), isAbs: false},
	"KEY_QUESTION": {code: EventCode(KEY_QUESTION), isAbs: false},
	"KEY_R": {code: EventCode(KEY_R), isAbs: false},
	"KEY_RADAR_OVERLAY": {code: EventCode(KEY_RADAR_OVERLAY), isAbs: false},
	"KEY_RADIO": {code: EventCode(KEY_RADIO), isAbs: false},
	"KEY_RECORD": {code: EventCode(KEY_RECORD), isAbs: false},
	"KEY_RED": {code: EventCode(KEY_RED), isAbs: false},
	"KEY_REDO": {code: EventCode(KEY_REDO), isAbs: false},
	"KEY_REFRESH": {code: EventCode(KEY_REFRESH), isAbs: false},
	"KEY_REFRESH_RATE_TOGGLE": {code: EventCode(KEY_REFRESH_RATE_TOGGLE), isAbs: false},
	"KEY_REPLY": {code: EventCode(KEY_REPLY), isAbs: false},
	"KEY_RESERVED": {code: EventCode(KEY_RESERVED), isAbs: false},
	"KEY_RESTART": {code: EventCode(KEY_RESTART), isAbs: false},
	"KEY_REWIND": {code: EventCode(KEY_REWIND), isAbs: false},
	"KEY_RFKILL": {code: EventCode(KEY_RFKILL), isAbs: false},
	"KEY_RIGHT": {code: EventCode(KEY_RIGHT), isAbs: false},
	"KEY_RIGHTALT": {code: EventCode(KEY_RIGHTALT), isAbs: false},
	"KEY_RIGHTBRACE": {code: EventCode(KEY_RIGHTBRACE), isAbs: false},
	"KEY_RIGHTCTRL": {code: EventCode(KEY_RIGHTCTRL), isAbs: false},
	"KEY_RIGHTMETA": {code: EventCode(KEY_RIGHTMETA), isAbs: false},
	"KEY_RIGHTSHIFT": {code: EventCode(KEY_RIGHTSHIFT), isAbs: false},
	"KEY_RIGHT_DOWN": {code: EventCode(KEY_RIGHT_DOWN), isAbs: false},
	"KEY_RIGHT_UP": {code: EventCode(KEY_RIGHT_UP), isAbs: false},
	"KEY_RO": {code: EventCode(KEY_RO), isAbs: false},
	"KEY_ROOT_MENU": {code: EventCode(KEY_ROOT_MENU), isAbs: false},
	"KEY_ROTATE_DISPLAY": {code: EventCode(KEY_ROTATE_DISPLAY), isAbs: false},
	"KEY_ROTATE_LOCK_TOGGLE": {code: EventCode(KEY_ROTATE_LOCK_TOGGLE), isAbs: false},
	"KEY_S": {code: EventCode(KEY_S), isAbs: false},
	"KEY_SAT": {code: EventCode(KEY_SAT), isAbs: false},
	"KEY_SAT2": {code: EventCode(KEY_SAT2), isAbs: false},
	"KEY_SAVE": {code: EventCode(KEY_SAVE), isAbs: false},
	"KEY_SCALE": {code: EventCode(KEY_SCALE), isAbs: false},
	"KEY_SCREEN": {code: EventCode(KEY_SCREEN), isAbs: false},
	"KEY_SCREENLOCK": {code: EventCode(KEY_SCREENLOCK), isAbs: false},
	"KEY_SCREENSAVER": {code: EventCode(KEY_SCREENSAVER), isAbs: false},
	"KEY_SCROLLDOWN": {code: EventCode(KEY_SCROLLDOWN), isAbs: false},
	"KEY_SCROLLLOCK": {code: EventCode(KEY_SCROLLLOCK), isAbs: false},
	"KEY_SCROLLUP": {code: EventCode(KEY_SCROLLUP), isAbs: false},
	"KEY_SEARCH": {code: EventCode(KEY_SEARCH), isAbs: false},
	"KEY_SELECT": {code: EventCode(KEY_SELECT), isAbs: false},
	"KEY_SELECTIVE_SCREENSHOT": {code: EventCode(KEY_SELECTIVE_SCREENSHOT), isAbs: false},
	"KEY_SEMICOLON": {code: EventCode(KEY_SEMICOLON), isAbs: false},
	"KEY_SEND": {code: EventCode(KEY_SEND), isAbs: false},
	"KEY_SENDFILE": {code: EventCode(KEY_SENDFILE), isAbs: false},
	"KEY_SETUP": {code: EventCode(KEY_SETUP), isAbs: false},
	"KEY_SHOP": {code: EventCode(KEY_SHOP), isAbs: false},
	"KEY_SHUFFLE": {code: EventCode(KEY_SHUFFLE), isAbs: false},
	"KEY_SIDEVU_SONAR": {code: EventCode(KEY_SIDEVU_SONAR), isAbs: false},
	"KEY_SINGLE_RANGE_RADAR": {code: EventCode(KEY_SINGLE_RANGE_RADAR), isAbs: false},
	"KEY_SLASH": {code: EventCode(KEY_SLASH), isAbs: false},
	"KEY_SLEEP": {code: EventCode(KEY_SLEEP), isAbs: false},
	"KEY_SLOW": {code: EventCode(KEY_SLOW), isAbs: false},
	"KEY_SLOWREVERSE": {code: EventCode(KEY_SLOWREVERSE), isAbs: false},
	"KEY_SOS": {code: EventCode(KEY_SOS), isAbs: false},
	"KEY_SOUND": {code: EventCode(KEY_SOUND), isAbs: false},
	"KEY_SPACE": {code: EventCode(KEY_SPACE), isAbs: false},
	"KEY_SPELLCHECK": {code: EventCode(KEY_SPELLCHECK), isAbs: false},
	"KEY_SPORT": {code: EventCode(KEY_SPORT), isAbs: false},
	"KEY_SPREADSHEET": {code: EventCode(KEY_SPREADSHEET), isAbs: false},
	"KEY_STOP": {code: EventCode(KEY_STOP), isAbs: false},
	"KEY_STOPCD": {code: EventCode(KEY_STOPCD), isAbs: false},
	"KEY_STOP_RECORD": {code: EventCode(KEY_STOP_RECORD), isAbs: false},
	"KEY_SUBTITLE": {code: EventCode(KEY_SUBTITLE), isAbs: false},
	"KEY_SUSPEND": {code: EventCode(KEY_SUSPEND), isAbs: false},
	"KEY_SWITCHVIDEOMODE": {code: EventCode(KEY_SWITCHVIDEOMODE), isAbs: false},
	"KEY_SYSRQ": {code: EventCode(KEY_SYSRQ), isAbs: false},
	"KEY_T": {code: EventCode(KEY_T), isAbs: false},
	"KEY_TAB": {code: EventCode(KEY_TAB), isAbs: false},
	"KEY_TAPE": {code: EventCode(KEY_TAPE), isAbs: false},
	"KEY_TASKMANAGER": {code: EventCode(KEY_TASKMANAGER), isAbs: false},
	"KEY_TEEN": {code: EventCode(KEY_TEEN), isAbs: false},
	"KEY_TEXT": {code: EventCode(KEY_TEXT), isAbs: false},
	"KEY_TIME": {code: EventCode(KEY_TIME), isAbs: false},
	"KEY_TITLE": {code: EventCode(KEY_TITLE), isAbs: false},
	"KEY_TOUCHPAD_OFF": {code: EventCode(KEY_TOUCHPAD_OFF), isAbs: false},
	"KEY_TOUCHPAD_ON": {code: EventCode(KEY_TOUCHPAD_ON), isAbs: false},
	"KEY_TOUCHPAD_TOGGLE": {code: EventCode(KEY_TOUCHPAD_TOGGLE), isAbs: false},
	"KEY_TRADITIONAL_SONAR": {code: EventCode(KEY_TRADITIONAL_SONAR), isAbs: false},
	"KEY_TUNER": {code: EventCode(KEY_TUNER), isAbs: false},
	"KEY_TV": {code: EventCode(KEY_TV), isAbs: false},
	"KEY_TV2": {code: EventCode(KEY_TV2), isAbs: false},
	"KEY_TWEN": {code: EventCode(KEY_TWEN), isAbs: false},
	"KEY_U": {code: EventCode(KEY_U), isAbs: false},
	"KEY_UNDO": {code: EventCode(KEY_UNDO), isAbs: false},
	"KEY_UNKNOWN": {code: EventCode(KEY_UNKNOWN), isAbs: false},
	"KEY_UNMUTE": {code: EventCode(KEY_UNMUTE), isAbs: false},
	"KEY_UP": {code: EventCode(KEY_UP), isAbs: false},
	"KEY_UWB": {code: EventCode(KEY_UWB), isAbs: false},
	"KEY_V": {code: EventCode(KEY_V), isAbs: false},
	"KEY_VCR": {code: EventCode(KEY_VCR), isAbs: false},
	"KEY_VCR2": {code: EventCode(KEY_VCR2), isAbs: false},
	"KEY_VENDOR": {code: EventCode(KEY_VENDOR), isAbs: false},
	"KEY_VIDEO": {code: EventCode(KEY_VIDEO), isAbs: false},
	"KEY_VIDEOPHONE": {code: EventCode(KEY_VIDEOPHONE), isAbs: false},
	"KEY_VIDEO_NEXT": {code: EventCode(KEY_VIDEO_NEXT), isAbs: false},
	"KEY_VIDEO_PREV": {code: EventCode(KEY_VIDEO_PREV), isAbs: false},
	"KEY_VOD": {code: EventCode(KEY_VOD), isAbs: false},
	"KEY_VOICECOMMAND": {code: EventCode(KEY_VOICECOMMAND), isAbs: false},
	"KEY_VOICEMAIL": {code: EventCode(KEY_VOICEMAIL), isAbs: false},
	"KEY_VOLUMEDOWN": {code: EventCode(KEY_VOLUMEDOWN), isAbs: false},
	"KEY_VOLUMEUP": {code: EventCode(KEY_VOLUMEUP), isAbs: false},
	"KEY_W": {code: EventCode(KEY_W), isAbs: false},
	"KEY_WAKEUP": {code: EventCode(KEY_WAKEUP), isAbs: false},
	"KEY_WIMAX": {code: EventCode(KEY_WIMAX), isAbs: false},
	"KEY_WLAN": {code: EventCode(KEY_WLAN), isAbs: false},
	"KEY_WORDPROCESSOR": {code: EventCode(KEY_WORDPROCESSOR), isAbs: false},
	"KEY_WPS_BUTTON": {code: EventCode(KEY_WPS_BUTTON), isAbs: false},
	"KEY_WWAN": {code: EventCode(KEY_WWAN), isAbs: false},
	"KEY_WWW": {code: EventCode(KEY_WWW), isAbs: false},
	"KEY_X": {code: EventCode(KEY_X), isAbs: false},
	"KEY_XFER": {code: EventCode(KEY_XFER), isAbs: false},
	"KEY_Y": {code: EventCode(KEY_Y), isAbs: false},
	"KEY_YELLOW": {code: EventCode(KEY_YELLOW), isAbs: false},
	"KEY_YEN": {code: EventCode(KEY_YEN), isAbs: false},
	"KEY_Z": {code: EventCode(KEY_Z), isAbs: false},
	"KEY_ZENKAKUHANKAKU": {code: EventCode(KEY_ZENKAKUHANKAKU), isAbs: false},
	"KEY_ZOOM": {code: EventCode(KEY_ZOOM), isAbs: false},
	"KEY_ZOOMIN": {code: EventCode(KEY_ZOOMIN), isAbs: false},
	"KEY_ZOOMOUT": {code: EventCode(KEY_ZOOMOUT), isAbs: false},
	"KEY_ZOOMRESET": {code: EventCode(KEY_ZOOMRESET), isAbs: false},
}

// ParseCodeName resolves name (a KEY_* or ABS_* macro name) to its
// evdev code, reporting whether it names an absolute axis (ABS_*)
// rather than a key/button (KEY_*).
func ParseCodeName(name string) (code EventCode, isAbs bool, ok bool) {
	entry, found := codeNames[name]
	if !found {
		return 0, false, false
	}

	return entry.code, entry.isAbs, true
}

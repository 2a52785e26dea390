//go:build linux

package source

import "keypoll/keycode"

// evdevCodes maps virtual-key codes to the linux input-event-codes that
// drive them. Generic modifiers fan out to both sides.
var evdevCodes = map[keycode.Code][]uint16{
	0x01: {0x110}, // BTN_LEFT
	0x02: {0x111}, // BTN_RIGHT
	0x04: {0x112}, // BTN_MIDDLE
	0x05: {0x113}, // BTN_SIDE
	0x06: {0x114}, // BTN_EXTRA
	0x08: {14},
	0x09: {15},
	0x0D: {28, 96},
	0x10: {42, 54},
	0x11: {29, 97},
	0x12: {56, 100},
	0x13: {119},
	0x14: {58},
	0x1B: {1},
	0x20: {57},
	0x21: {104},
	0x22: {109},
	0x23: {107},
	0x24: {102},
	0x25: {105},
	0x26: {103},
	0x27: {106},
	0x28: {108},
	0x2C: {99},
	0x2D: {110},
	0x2E: {111},
	0x2F: {138},
	0x30: {11},
	0x31: {2},
	0x32: {3},
	0x33: {4},
	0x34: {5},
	0x35: {6},
	0x36: {7},
	0x37: {8},
	0x38: {9},
	0x39: {10},
	0x41: {30},
	0x42: {48},
	0x43: {46},
	0x44: {32},
	0x45: {18},
	0x46: {33},
	0x47: {34},
	0x48: {35},
	0x49: {23},
	0x4A: {36},
	0x4B: {37},
	0x4C: {38},
	0x4D: {50},
	0x4E: {49},
	0x4F: {24},
	0x50: {25},
	0x51: {16},
	0x52: {19},
	0x53: {31},
	0x54: {20},
	0x55: {22},
	0x56: {47},
	0x57: {17},
	0x58: {45},
	0x59: {21},
	0x5A: {44},
	0x5B: {125},
	0x5C: {126},
	0x5D: {127},
	0x5F: {142},
	0x60: {82},
	0x61: {79},
	0x62: {80},
	0x63: {81},
	0x64: {75},
	0x65: {76},
	0x66: {77},
	0x67: {71},
	0x68: {72},
	0x69: {73},
	0x6A: {55},
	0x6B: {78},
	0x6D: {74},
	0x6E: {83},
	0x6F: {98},
	0x70: {59},
	0x71: {60},
	0x72: {61},
	0x73: {62},
	0x74: {63},
	0x75: {64},
	0x76: {65},
	0x77: {66},
	0x78: {67},
	0x79: {68},
	0x7A: {87},
	0x7B: {88},
	0x7C: {183},
	0x7D: {184},
	0x7E: {185},
	0x7F: {186},
	0x80: {187},
	0x81: {188},
	0x82: {189},
	0x83: {190},
	0x84: {191},
	0x85: {192},
	0x86: {193},
	0x87: {194},
	0x90: {69},
	0x91: {70},
	0xA0: {42},
	0xA1: {54},
	0xA2: {29},
	0xA3: {97},
	0xA4: {56},
	0xA5: {100},
	0xA6: {158},
	0xA7: {159},
	0xA8: {173},
	0xA9: {128},
	0xAA: {217},
	0xAB: {156},
	0xAC: {172},
	0xAD: {113},
	0xAE: {114},
	0xAF: {115},
	0xB0: {163},
	0xB1: {165},
	0xB2: {166},
	0xB3: {164},
	0xB4: {155},
	0xBA: {39},
	0xBB: {13},
	0xBC: {51},
	0xBD: {12},
	0xBE: {52},
	0xBF: {53},
	0xC0: {41},
	0xDB: {26},
	0xDC: {43},
	0xDD: {27},
	0xDE: {40},
	0xE2: {86},
}

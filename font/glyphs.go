package font

// Default is the terminal font. Glyph 0 is blank and doubles as the erase
// glyph; glyphs 1 to 26 are the letters A to Z so that both upper and lower
// case ASCII letters select their letter. Glyphs 27 to 31 follow ASCII
// order after Z.
var Default = MustBuild(defaultGlyphs)

var defaultGlyphs = [][]string{
	{ // 0 blank
		"      ",
		"      ",
		"      ",
		"      ",
		"      ",
		"      ",
		"      ",
		"      ",
	},
	{ // 1 A
		"  #   ",
		" # #  ",
		"#   # ",
		"#   # ",
		"##### ",
		"#   # ",
		"#   # ",
		"      ",
	},
	{ // 2 B
		"####  ",
		"#   # ",
		"#   # ",
		"####  ",
		"#   # ",
		"#   # ",
		"####  ",
		"      ",
	},
	{ // 3 C
		" ###  ",
		"#   # ",
		"#     ",
		"#     ",
		"#     ",
		"#   # ",
		" ###  ",
		"      ",
	},
	{ // 4 D
		"###   ",
		"#  #  ",
		"#   # ",
		"#   # ",
		"#   # ",
		"#  #  ",
		"###   ",
		"      ",
	},
	{ // 5 E
		"##### ",
		"#     ",
		"#     ",
		"####  ",
		"#     ",
		"#     ",
		"##### ",
		"      ",
	},
	{ // 6 F
		"##### ",
		"#     ",
		"#     ",
		"####  ",
		"#     ",
		"#     ",
		"#     ",
		"      ",
	},
	{ // 7 G
		" ###  ",
		"#   # ",
		"#     ",
		"# ### ",
		"#   # ",
		"#   # ",
		" #### ",
		"      ",
	},
	{ // 8 H
		"#   # ",
		"#   # ",
		"#   # ",
		"##### ",
		"#   # ",
		"#   # ",
		"#   # ",
		"      ",
	},
	{ // 9 I
		" ###  ",
		"  #   ",
		"  #   ",
		"  #   ",
		"  #   ",
		"  #   ",
		" ###  ",
		"      ",
	},
	{ // 10 J
		"  ### ",
		"   #  ",
		"   #  ",
		"   #  ",
		"   #  ",
		"#  #  ",
		" ##   ",
		"      ",
	},
	{ // 11 K
		"#   # ",
		"#  #  ",
		"# #   ",
		"##    ",
		"# #   ",
		"#  #  ",
		"#   # ",
		"      ",
	},
	{ // 12 L
		"#     ",
		"#     ",
		"#     ",
		"#     ",
		"#     ",
		"#     ",
		"##### ",
		"      ",
	},
	{ // 13 M
		"#   # ",
		"## ## ",
		"# # # ",
		"# # # ",
		"#   # ",
		"#   # ",
		"#   # ",
		"      ",
	},
	{ // 14 N
		"#   # ",
		"#   # ",
		"##  # ",
		"# # # ",
		"#  ## ",
		"#   # ",
		"#   # ",
		"      ",
	},
	{ // 15 O
		" ###  ",
		"#   # ",
		"#   # ",
		"#   # ",
		"#   # ",
		"#   # ",
		" ###  ",
		"      ",
	},
	{ // 16 P
		"####  ",
		"#   # ",
		"#   # ",
		"####  ",
		"#     ",
		"#     ",
		"#     ",
		"      ",
	},
	{ // 17 Q
		" ###  ",
		"#   # ",
		"#   # ",
		"#   # ",
		"# # # ",
		"#  #  ",
		" ## # ",
		"      ",
	},
	{ // 18 R
		"####  ",
		"#   # ",
		"#   # ",
		"####  ",
		"# #   ",
		"#  #  ",
		"#   # ",
		"      ",
	},
	{ // 19 S
		" #### ",
		"#     ",
		"#     ",
		" ###  ",
		"    # ",
		"    # ",
		"####  ",
		"      ",
	},
	{ // 20 T
		"##### ",
		"  #   ",
		"  #   ",
		"  #   ",
		"  #   ",
		"  #   ",
		"  #   ",
		"      ",
	},
	{ // 21 U
		"#   # ",
		"#   # ",
		"#   # ",
		"#   # ",
		"#   # ",
		"#   # ",
		" ###  ",
		"      ",
	},
	{ // 22 V
		"#   # ",
		"#   # ",
		"#   # ",
		"#   # ",
		"#   # ",
		" # #  ",
		"  #   ",
		"      ",
	},
	{ // 23 W
		"#   # ",
		"#   # ",
		"#   # ",
		"# # # ",
		"# # # ",
		"# # # ",
		" # #  ",
		"      ",
	},
	{ // 24 X
		"#   # ",
		"#   # ",
		" # #  ",
		"  #   ",
		" # #  ",
		"#   # ",
		"#   # ",
		"      ",
	},
	{ // 25 Y
		"#   # ",
		"#   # ",
		" # #  ",
		"  #   ",
		"  #   ",
		"  #   ",
		"  #   ",
		"      ",
	},
	{ // 26 Z
		"##### ",
		"    # ",
		"   #  ",
		"  #   ",
		" #    ",
		"#     ",
		"##### ",
		"      ",
	},
	{ // 27 [
		" ###  ",
		" #    ",
		" #    ",
		" #    ",
		" #    ",
		" #    ",
		" ###  ",
		"      ",
	},
	{ // 28 backslash
		"      ",
		"#     ",
		" #    ",
		"  #   ",
		"   #  ",
		"    # ",
		"      ",
		"      ",
	},
	{ // 29 ]
		" ###  ",
		"   #  ",
		"   #  ",
		"   #  ",
		"   #  ",
		"   #  ",
		" ###  ",
		"      ",
	},
	{ // 30 ^
		"  #   ",
		" # #  ",
		"#   # ",
		"      ",
		"      ",
		"      ",
		"      ",
		"      ",
	},
	{ // 31 _
		"      ",
		"      ",
		"      ",
		"      ",
		"      ",
		"      ",
		"##### ",
		"      ",
	},
}

package noise

// catalog order is part of the hash-selection contract; append only.
var catalog = []Set{
	{Name: "default", Charset: "@#%*&"},
	{
		Name:    "signal",
		Charset: "10SE",
		Rows: []string{
			"        1S1     ",
			"       10101    ",
			"       10101    ",
			"        1E1     ",
		},
	},
	{
		Name:    "ritual",
		Charset: "10SE",
		Rows: []string{
			"     11111111   ",
			"   1S1000001E1  ",
			"   1E1000001S1  ",
			"     11111111   ",
		},
	},
	{
		Name:    "gate",
		Charset: "10",
		Rows: []string{
			"      111111    ",
			"     1    01    ",
			"     1 111 1    ",
			"      111111    ",
		},
	},
	{
		Name:    "drift",
		Charset: "10",
		Rows: []string{
			" 1              ",
			"  10            ",
			"    101         ",
			"       1011     ",
		},
	},
	{
		Name:    "crown",
		Charset: "10",
		Rows: []string{
			"   1  1  1      ",
			"    10101       ",
			"   1111111      ",
			"    10101       ",
		},
	},
	{
		Name:    "chill",
		Charset: " .:*",
		Rows: []string{
			"   .:*.  .:*.   ",
			"  .   *:   *:   ",
			"   *:.   *:.    ",
			"    .  *:  .    ",
		},
	},
	{
		Name:    "matrix",
		Charset: "01",
		Rows: []string{
			"   01010101     ",
			"   10101010     ",
			"   01010101     ",
			"   10101010     ",
		},
	},
	{
		Name:    "veil",
		Charset: "|/",
		Rows: []string{
			"  |  |  |  |    ",
			"  | /| /| /|    ",
			"   |  |  |      ",
			"   | /| /|      ",
		},
	},
	{
		Name:    "slashfall",
		Charset: "/",
		Rows: []string{
			" //// //// //// ",
			"  //// //// ////",
			" //// //// //// ",
			"  //// //// ////",
		},
	},
	{
		Name:    "backwash",
		Charset: `\\`,
		Rows: []string{
			` \\\\ \\\\ \\\\ `,
			`\\\\ \\\\ \\\\  `,
			` \\\\ \\\\ \\\\ `,
			`\\\\ \\\\ \\\\  `,
		},
	},
	{
		Name:    "rail",
		Charset: "-_",
		Rows: []string{
			" --- --- --- ---",
			"--- --- --- --- ",
			" --- --- --- ---",
			"--- --- --- --- ",
		},
	},
	{
		Name:    "stripe01",
		Charset: "10",
		Rows: []string{
			" 10101010101010 ",
			"0101010101010101",
			" 10101010101010 ",
			"0101010101010101",
		},
	},
	{
		Name:    "pulse01",
		Charset: "10",
		Rows: []string{
			" 1111    1111   ",
			"   11  11   11  ",
			" 1111    1111   ",
			"   11  11   11  ",
		},
	},
	{
		Name:    "zed",
		Charset: "zZ",
		Rows: []string{
			" zzzz zzzz zzzz ",
			"    zzzz zzzz   ",
			" zzzz zzzz zzzz ",
			"    zzzz zzzz   ",
		},
	},
	{
		Name:    "xo",
		Charset: "xo",
		Rows: []string{
			" xoxoxoxoxoxoxo ",
			" oxoxoxoxoxoxox ",
			" xoxoxoxoxoxoxo ",
			" oxoxoxoxoxoxox ",
		},
	},
	{
		Name:    "arrows",
		Charset: "@><?",
		Rows: []string{
			" @@@>><<? ? ?>><<@",
			" ?>><<@@@>><<? ? ?",
			" @@@>><<? ? ?>><<@",
			" ?>><<@@@>><<? ? ?",
		},
	},
	{
		Name:    "valve",
		Charset: "|/_",
		Rows: []string{
			"  |/_  |/_  |   ",
			"   |/_   |/_    ",
			"    |/_   |/_   ",
			"     |/_   |/_  ",
		},
	},
	{
		Name:    "tangle",
		Charset: `|/\`,
		Rows: []string{
			`  |/\  |/\  |  `,
			`   /|\ /|\ /| `,
			`    |/\  |/\  `,
			`     /|\  /|\ `,
		},
	},
	{
		Name:    "artery",
		Charset: "|/",
		Rows: []string{
			"    |    |      ",
			"   |/   |/      ",
			"   |    |/      ",
			"   |/      /    ",
		},
	},
	{
		Name:    "capillary",
		Charset: "|/",
		Rows: []string{
			"  |/|/|/|/|/    ",
			"   | | | | |    ",
			"  |/|/|/|/|/    ",
			"   | | | | |    ",
		},
	},
	{
		Name:    "cascade",
		Charset: "/",
		Rows: []string{
			"      /        ",
			"     //        ",
			"    ///        ",
			"   ////        ",
		},
	},
	{
		Name:    "lattice",
		Charset: "|-",
		Rows: []string{
			"   |-|-|-|-|    ",
			"   | | | | |    ",
			"   |-|-|-|-|    ",
			"   | | | | |    ",
		},
	},
	{
		Name:    "braid",
		Charset: "/",
		Rows: []string{
			"  / / / / /    ",
			"   / / / /     ",
			"  / / / / /    ",
			"   / / / /     ",
		},
	},
	{
		Name:    "vine",
		Charset: "/|",
		Rows: []string{
			"         /|     ",
			"        / |     ",
			"       /  |     ",
			"      /   |     ",
		},
	},
	{
		Name:    "warp",
		Charset: "/|",
		Rows: []string{
			"   /| /| /|    ",
			"    |/ |/ |/   ",
			"   /| /| /|    ",
			"    |/ |/ |/   ",
		},
	},
	{
		Name:    "fissure",
		Charset: "/|",
		Rows: []string{
			"        |      ",
			"       /|      ",
			"        |/     ",
			"         |     ",
		},
	},
	{
		Name:    "branch",
		Charset: "/|",
		Rows: []string{
			"        /      ",
			"       /|      ",
			"      / |      ",
			"        |      ",
		},
	},
	{
		Name:    "sluice",
		Charset: "/",
		Rows: []string{
			"      /        ",
			"     /         ",
			"    /          ",
			"   /           ",
		},
	},
	{
		Name:    "weave",
		Charset: "|/",
		Rows: []string{
			"  |/ |/ |/ |/  ",
			"   |  |  |  |  ",
			"  |/ |/ |/ |/  ",
			"   |  |  |  |  ",
		},
	},
	{
		Name:    "storm",
		Charset: `/\|_`,
		Rows: []string{
			`        /\     `,
			`       /  \_   `,
			`      /\  /\   `,
			`        \\_/   `,
		},
	},
	{
		Name:    "pulse",
		Charset: "10",
		Rows: []string{
			"       111      ",
			"      10001     ",
			"       111      ",
			"        1       ",
		},
	},
	{
		Name:    "grid",
		Charset: "#+",
		Rows: []string{
			"  #+#+#+#+#     ",
			"  +# +# +# +    ",
			"  #+#+#+#+#     ",
			"  +# +# +# +    ",
		},
	},
	{
		Name:    "zshape",
		Charset: "zZ",
		Rows: []string{
			" zzzzzzzzzzz   ",
			"        zzz    ",
			"      zzz      ",
			" zzzzzzzzzzz   ",
		},
	},
	{
		Name:    "qshape",
		Charset: "Q0",
		Rows: []string{
			"   QQQQQQQQ    ",
			"  QQ      QQ   ",
			"  QQ    Q QQ   ",
			"   QQQQQQQQQ   ",
		},
	},
	{
		Name:    "hourshape",
		Charset: "H8",
		Rows: []string{
			"  HHHHHHHHHH   ",
			"    HHHHHH     ",
			"    HHHHHH     ",
			"  HHHHHHHHHH   ",
		},
	},
	{
		Name:    "cross",
		Charset: "+X",
		Rows: []string{
			"     ++        ",
			"  ++++++++     ",
			"     ++        ",
			"     ++        ",
		},
	},
	{
		Name:    "apple",
		Charset: "@0",
		Rows: []string{
			"    @@ @@      ",
			"   @0@0@0@     ",
			"   @00000@     ",
			"    @000@      ",
		},
	},
	{
		Name:    "echo",
		Charset: "10",
		Rows: []string{
			"       1        ",
			"      101       ",
			"     10001      ",
			"    1000001     ",
		},
	},
	{
		Name:    "spine",
		Charset: "|1",
		Rows: []string{
			"         |      ",
			"        1|1     ",
			"         |      ",
			"        1|1     ",
		},
	},
	{
		Name:    "halo",
		Charset: "10",
		Rows: []string{
			"      11111     ",
			"     1  0 1     ",
			"      11111     ",
			"        1       ",
		},
	},
	{
		Name:    "flare",
		Charset: "*+",
		Rows: []string{
			"        *       ",
			"      *+*+*     ",
			"       +*+      ",
			"        *       ",
		},
	},
	{
		Name:    "shard",
		Charset: `/\`,
		Rows: []string{
			"       /        ",
			`      /\       `,
			`        \\     `,
			`         \\    `,
		},
	},
	{
		Name:    "tunnel",
		Charset: "10",
		Rows: []string{
			"     1111111    ",
			"     1 101 1    ",
			"     1 100 1    ",
			"     1111111    ",
		},
	},
	{
		Name:    "static",
		Charset: "@#%*+",
		Rows: []string{
			"  @#%*+@#%*+    ",
			"  %*+@#%*+@#    ",
			"  #+@%*#+@%*    ",
			"  *+@#%*+@#%    ",
		},
	},
	{
		Name:    "orbit",
		Charset: "10",
		Rows: []string{
			"        1       ",
			"      1   1     ",
			"       111      ",
			"      1   1     ",
		},
	},
	{
		Name:    "husk",
		Charset: "10",
		Rows: []string{
			"     111111     ",
			"     1    01    ",
			"     10   1     ",
			"     111111     ",
		},
	},
	{
		Name:    "core",
		Charset: "10",
		Rows: []string{
			"      1111      ",
			"      1001      ",
			"      1001      ",
			"      1111      ",
		},
	},
}

package instances

// Bundled instance data, in the standard text format: the item count, one
// "<id> <value> <weight>" line per item, then the capacity.

const tinyInstance = `3
1 3 8
2 2 8
3 9 1
10
`

const small1Instance = `10
1 52 28
2 17 9
3 63 40
4 24 12
5 9 6
6 41 33
7 30 21
8 77 50
9 14 8
10 58 36
121
`

const small2Instance = `20
1 44 25
2 12 7
3 67 48
4 23 11
5 89 61
6 31 19
7 56 34
8 18 10
9 72 52
10 27 16
11 63 41
12 9 5
13 50 30
14 38 24
15 81 57
16 15 9
17 47 29
18 22 13
19 69 45
20 34 20
278
`

var builtin = map[string]string{
	"tiny":    tinyInstance,
	"small_1": small1Instance,
	"small_2": small2Instance,
}

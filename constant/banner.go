package constant

// Banner is printed above the root command help.
const Banner = `
 _ _
| (_)_ __   ___ _   _ _ __
| | | '_ \ / _ \ | | | '_ \
| | | | | |  __/ |_| | |_) |
|_|_|_| |_|\___|\__,_| .__/
                     |_|`

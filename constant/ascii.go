package constant

// AsciiArtLogo is the application's banner shown in the root help.
const AsciiArtLogo = `
     _                                     
  __| | ___  ___ _ __   ___ 
 / _' |/ _ \/ _ \ '_ \ / __|
| (_| |  __/  __/ |_) | (__ 
 \__,_|\___|\___| .__/ \___|
                |_|         `

package scaffold

// readmeTemplate is the initial README body; %s is the project name.
const readmeTemplate = `# %s

Scaffolded with stencil.
`

// gitignoreBody is the ignore file copied into every project root.
const gitignoreBody = `node_modules/
npm-debug.log
dist/
.DS_Store
`

// licenseBody starts empty; picking a license is left to the project owner.
const licenseBody = ""

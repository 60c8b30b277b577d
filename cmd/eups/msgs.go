package eups

// Short and long descriptions for the root command and each verb, kept
// apart from the command constructors (root.go and the per-verb files) per
// dodot's cmd/dodot/msgs.go convention.
const (
	MsgRootShort = "Manage versioned software products and their environments"
	MsgRootLong  = `eups resolves, sets up, and tears down the environment a versioned
software product and its dependencies need, by evaluating each
product's table file against a declared database of product
versions.`

	MsgSetupShort = "Resolve and set up a product's environment"
	MsgSetupLong  = `setup resolves product against the configured stacks (or a local
root given with -r), evaluates its table file and every dependency
it pulls in via setupRequired/setupOptional, and prints the
resulting shell commands on stdout for the calling shell wrapper to
eval.`

	MsgUnsetupShort = "Tear down a product's environment contribution"
	MsgUnsetupLong  = `unsetup reads back product's own SETUP_<PRODUCT> marker, re-walks
its table file, and prints the shell commands needed to undo it.
Dependencies it pulled in at setup time are left alone.`

	MsgListShort = "List declared product versions"
	MsgListLong  = `list enumerates every declared (product, version, flavor) across the
configured stacks, annotated with the tags pointing at each one and
whether it is the version currently set up in this shell.`

	MsgDeclareShort   = "Declare a product version in the database"
	MsgUndeclareShort = "Remove a declared product version"
	MsgTagsShort      = "List tags and the versions they point at"
	MsgTagShort       = "Point a tag at a product version"
	MsgUntagShort     = "Remove a tag from a product version"
	MsgFlavorShort    = "Print the active flavor"
	MsgExpandtableShort = "Print a product's table file, expanded, without applying it"
	MsgPathShort      = "Print a product's directory without setting it up"
)

package shell

// ZshPrinter is syntactically identical to sh's export/unset/alias forms;
// it is kept as its own named type rather than a bare alias so EUPS_SHELL
// selection (select.go) has one case per shell and future zsh-only
// extensions (e.g. `setopt`-dependent quoting) have somewhere to live.
type ZshPrinter struct{ ShPrinter }

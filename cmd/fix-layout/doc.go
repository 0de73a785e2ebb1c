/*
Command fix-layout runs commands based on which window has input focus. It
was made for pinning certain applications to a keyboard layout, but any
command works.

A single rule can be given on the command line:

	fix-layout -C '^code$' -a 'xkb-switch -s us' -u 'xkb-switch -s ru'

Several rules go in a TOML config file passed with -c or found in

	$XDG_CONFIG_HOME/fix-layout/config.toml

An entry looks like this:

	[[entries]]
	regex            = "^code$"
	target_attribute = "class"   # or "name" for the window title
	active_command   = "xkb-switch -s us"
	unactive_command = "xkb-switch -s ru"

Every rule is evaluated on every focus change, so commands should be
idempotent. A class rule matches when its regex matches either the instance
or the class part of WM_CLASS; a name rule matches against the whole title.

See example-config.toml for the full file structure.
*/
package main

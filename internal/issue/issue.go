// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type Id int

const (
	InvalidModulePathId Id = iota + 1
	ModuleAlreadyExistsId
	CrateRootNotFoundId
	ParentModuleNotFoundId
	ConfigLoadFailedId
)

type MarkdownMsg string

type Issue struct {
	id    Id          // ID used to lookup the issue
	mdMsg MarkdownMsg // Markdown text that will be rendered
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) Render(stylePath string) (string, error) {
	return render(string(i.mdMsg), stylePath)
}

var (
	render = glamour.Render

	invalidModulePathIssue = &Issue{
		id: InvalidModulePathId,
		mdMsg: `
# Invalid module path!

Module paths are slash-separated lists of Rust identifiers.

## Naming rules:
- Each segment starts with a letter or underscore
- Segments contain only alphanumerics and underscores
- Separate nested modules with forward slashes

## Examples:
~~~
$ mkmod parser
$ mkmod net/http/server
$ mkmod _internal/codec --dir
~~~`,
	}

	moduleAlreadyExistsIssue = &Issue{
		id: ModuleAlreadyExistsId,
		mdMsg: `
# Module already exists!

A file or directory with that name is already present. Existing files are
never overwritten or merged.

## Things you can try:
- Pick a different module name
- Remove the existing file first if it is a leftover
- Check whether the module was already scaffolded:
~~~
$ ls src/
~~~`,
	}

	crateRootNotFoundIssue = &Issue{
		id: CrateRootNotFoundId,
		mdMsg: `
# No crate root file found!

Registration at the project root needs a root module file, but neither
lib.rs nor main.rs exists next to the new module.

## Things you can try:
- Create a crate first:
~~~
$ cargo init
~~~

- Skip parent registration:
~~~
$ mkmod mymod --no-add
~~~`,
	}

	parentModuleNotFoundIssue = &Issue{
		id: ParentModuleNotFoundId,
		mdMsg: `
# Parent module file not found!

The new module was created, but no parent file (mod.rs or the sibling
<dir>.rs) exists to register it in.

## Things you can try:
- Create the parent as a directory module first:
~~~
$ mkmod parent --dir
$ mkmod parent/child
~~~

- Declare the module by hand in the file that owns the directory`,
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

Could not load the mkmod configuration file.

## Configuration file locations:
- Linux: ~/.config/mkmod/config.toml
- macOS: ~/Library/Application Support/mkmod/config.toml
- Windows: %APPDATA%\mkmod\config.toml

## Things you can try:
- Create a default configuration:
~~~
$ mkmod config init
~~~

- Check the TOML syntax
- Remove the config file to use defaults`,
	}

	issues = map[Id]*Issue{
		invalidModulePathIssue.Id():    invalidModulePathIssue,
		moduleAlreadyExistsIssue.Id():  moduleAlreadyExistsIssue,
		crateRootNotFoundIssue.Id():    crateRootNotFoundIssue,
		parentModuleNotFoundIssue.Id(): parentModuleNotFoundIssue,
		configLoadFailedIssue.Id():     configLoadFailedIssue,
	}
)

func Values() []*Issue {
	vals := maps.Values(issues)
	slices.SortFunc(vals, func(a, b *Issue) int { return int(a.id) - int(b.id) })
	return vals
}

func Get(id Id) *Issue {
	return issues[id]
}

/*
Package style holds the data model of computed styles.

A computed style is a set of property values, grouped into property groups,
plus custom properties and a small set of flags derived during style
resolution. Property groups are shared between a style and its parent (for
inherited groups) or the initial values (for non-inherited groups) as long
as no value of the group differs.

Links and their descendants may carry a second, nested set of values: the
visited style. It holds the values visited-dependent properties would have
if the relevant link were visited. Whether these values may be used for
painting is signalled by flag IsRelevantLinkVisited only. Script-observable
property values are always taken from the regular style.

The property registry knows, for every longhand property, its group,
whether it inherits, its initial value and whether it is visited-dependent.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package style

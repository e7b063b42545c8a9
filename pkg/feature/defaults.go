package feature

// Icon references bundled with the assets package.
const (
	IconMountain IconRef = "undraw_docusaurus_mountain.svg"
	IconTree     IconRef = "undraw_docusaurus_tree.svg"
	IconReact    IconRef = "undraw_docusaurus_react.svg"
)

var defaultDescriptors = []Descriptor{
	{
		Title:       ".NET Development",
		Icon:        IconMountain,
		Description: "Our team specializes in .NET development, delivering robust and scalable applications tailored to your business needs.",
	},
	{
		Title:       "Angular Expertise",
		Icon:        IconTree,
		Description: "We leverage Angular to build dynamic and responsive web applications, ensuring a seamless user experience.",
	},
	{
		Title:       "Web Application Solutions",
		Icon:        IconReact,
		Description: "From concept to deployment, we provide end-to-end web application solutions, utilizing the latest technologies and best practices.",
	},
}

// Default returns the homepage feature list shipped with the site.
func Default() Table {
	return NewTable(defaultDescriptors...)
}

package settings

// defaultSettings are the site search settings every installation starts with
func defaultSettings() []Settings {
	return []Settings{
		// CMS pages
		{
			SettingKey:  "cms_pages_enabled",
			Label:       "Search CMS pages",
			Group:       "sitesearch",
			Type:        TypeBool,
			ValueBool:   true,
			Description: "Include pages carrying the site search include component",
		},
		{
			SettingKey:  "cms_pages_label",
			Label:       "CMS pages label",
			Group:       "sitesearch",
			Type:        TypeString,
			ValueString: "Page",
			Description: "Name shown for CMS page results",
		},

		// Photo albums
		{
			SettingKey:  "graker_photoalbums_enabled",
			Label:       "Search photo albums",
			Group:       "sitesearch",
			Type:        TypeBool,
			ValueBool:   true,
			Description: "Include albums and photos in search results",
		},
		{
			SettingKey:  "graker_photoalbums_label",
			Label:       "Photo albums label",
			Group:       "sitesearch",
			Type:        TypeString,
			ValueString: "Photoalbums",
			Description: "Name shown for photo album results",
		},
		{
			SettingKey:  "graker_photoalbums_album_page",
			Label:       "Album page",
			Group:       "sitesearch",
			Type:        TypeString,
			ValueString: "photoalbums/album",
			Description: "CMS page used to link album results",
		},
		{
			SettingKey:  "graker_photoalbums_photo_page",
			Label:       "Photo page",
			Group:       "sitesearch",
			Type:        TypeString,
			ValueString: "photoalbums/photo",
			Description: "CMS page used to link photo results",
		},

		// Blog
		{
			SettingKey:  "rainlab_blog_enabled",
			Label:       "Search blog posts",
			Group:       "sitesearch",
			Type:        TypeBool,
			ValueBool:   true,
			Description: "Include published blog posts in search results",
		},
		{
			SettingKey:  "rainlab_blog_label",
			Label:       "Blog label",
			Group:       "sitesearch",
			Type:        TypeString,
			ValueString: "Blog",
			Description: "Name shown for blog results",
		},
		{
			SettingKey:  "rainlab_blog_posturl",
			Label:       "Blog post page",
			Group:       "sitesearch",
			Type:        TypeString,
			ValueString: "blog/post",
			Description: "CMS page used to link blog posts",
		},
	}
}

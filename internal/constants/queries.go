package constants

const (
	InsertApplication = `
	INSERT INTO applications (
		name,
		email,
		callsign,
		discord,
		birth_date,
		continent,
		experience,
		reason,
		aircraft,
		status
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, 'pending')
	RETURNING *;
	`

	GetApplicationById = `
	SELECT * FROM applications WHERE id = $1
	`

	ListApplications = `
	SELECT * FROM applications ORDER BY created_at DESC
	`

	GetPilotById = `
	SELECT * FROM pilots WHERE id = $1
	`

	ListPilots = `
	SELECT * FROM pilots ORDER BY created_at DESC
	`

	UpdatePilotProfile = `
	UPDATE pilots
	SET name = $2, registrations = $3, updated_at = NOW()
	WHERE id = $1
	RETURNING *;
	`

	DeletePilotById = `
	DELETE FROM pilots WHERE id = $1
	`

	ListPublishedPosts = `
	SELECT * FROM posts WHERE is_published = TRUE ORDER BY created_at DESC
	`

	GetPostById = `
	SELECT * FROM posts WHERE id = $1
	`

	InsertPost = `
	INSERT INTO posts (title, content, author, image_url, is_published, updated_at)
	VALUES ($1, $2, $3, $4, $5, NOW())
	RETURNING *;
	`

	UpdatePost = `
	UPDATE posts
	SET title = $2, content = $3, author = $4, image_url = $5, is_published = $6, updated_at = NOW()
	WHERE id = $1
	RETURNING *;
	`

	DeletePostById = `
	DELETE FROM posts WHERE id = $1
	`
)

package blogRepository

const (
	queryCreateBlog = `
		INSERT INTO blog (
			title,
			body,
			image_url,
			author,
			created_at,
			category_id,
			tag,
			user_id
		) VALUES (
			:title,
			:body,
			:image_url,
			:author,
			:created_at,
			:category_id,
			:tag,
			:user_id
		)
		RETURNING id
	`

	selectBlogView = `
		SELECT
			b.id,
			b.title,
			b.body,
			b.image_url,
			b.author,
			b.created_at,
			b.category_id,
			b.tag,
			b.user_id,
			c.title AS category_title,
			u.first_name AS author_first_name,
			u.last_name AS author_last_name
		FROM blog b
		LEFT JOIN category c ON b.category_id = c.id
		LEFT JOIN users u ON b.user_id = u.id
	`

	queryGetBlogByID = selectBlogView + `
		WHERE b.id = :id
		LIMIT 1
	`

	queryListRecent = selectBlogView + `
		ORDER BY b.created_at DESC, b.id DESC
		LIMIT :limit
	`

	queryGetAllCategories = `
		SELECT
			id,
			title
		FROM category
		ORDER BY id ASC
	`

	queryCountCategoryByID = `
		SELECT COUNT(*)
		FROM category
		WHERE id = :id
	`

	queryCreateCategory = `
		INSERT INTO category (id, title)
		VALUES (:id, :title)
	`

	queryCreateComment = `
		INSERT INTO comment (blog_id, name, email, website, message, created_at)
		VALUES (:blog_id, :name, :email, :website, :message, :created_at)
		RETURNING id
	`

	queryCreateReply = `
		INSERT INTO reply (comment_id, name, email, message, created_at)
		VALUES (:comment_id, :name, :email, :message, :created_at)
		RETURNING id
	`

	queryGetThreadRows = `
		SELECT
			c.id AS comment_id,
			c.blog_id,
			c.name AS comment_name,
			c.email AS comment_email,
			c.website AS comment_website,
			c.message AS comment_message,
			r.id AS reply_id,
			r.name AS reply_name,
			r.email AS reply_email,
			r.message AS reply_message
		FROM comment c
		LEFT JOIN reply r ON c.id = r.comment_id
		WHERE c.blog_id = :blog_id
		ORDER BY c.id DESC, r.id ASC
	`
)

package blogs

import "ProjectBlog/internal/entity"

// AssembleThreads folds comment/reply join rows into threads. Threads keep the
// order in which their comment first appears; replies keep row order.
func AssembleThreads(rows []entity.CommentReplyRow) []entity.CommentThread {
	threads := make([]entity.CommentThread, 0)
	index := make(map[int64]int)

	for _, row := range rows {
		i, ok := index[row.Comment.ID]
		if !ok {
			i = len(threads)
			index[row.Comment.ID] = i
			threads = append(threads, entity.CommentThread{
				Comment: row.Comment,
				Replies: make([]entity.Reply, 0),
			})
		}

		if row.Reply != nil {
			threads[i].Replies = append(threads[i].Replies, *row.Reply)
		}
	}

	return threads
}

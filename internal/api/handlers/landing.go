package handlers

import "net/http"

const landingHTML = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Net Worth Dashboard</title>
    <style>
        * { margin: 0; padding: 0; box-sizing: border-box; }
        body {
            font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif;
            background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
            min-height: 100vh;
            display: flex;
            justify-content: center;
            align-items: center;
            padding: 20px;
        }
        .container {
            background: white;
            border-radius: 20px;
            box-shadow: 0 20px 60px rgba(0, 0, 0, 0.3);
            padding: 60px;
            max-width: 640px;
            width: 100%;
            text-align: center;
        }
        h1 { color: #333; font-size: 2.4em; margin-bottom: 20px; }
        .subtitle { color: #666; font-size: 1.2em; margin-bottom: 30px; }
        .status {
            padding: 15px;
            background: #d4edda;
            color: #155724;
            border-radius: 10px;
            font-weight: 500;
            margin-bottom: 30px;
        }
        ul { list-style: none; color: #555; line-height: 2; }
        code { background: #f4f4f4; padding: 2px 6px; border-radius: 4px; }
    </style>
</head>
<body>
    <div class="container">
        <h1>Net Worth Dashboard</h1>
        <p class="subtitle">Personal finance tracking from Google Sheets</p>
        <div class="status">&#10003; System Online &amp; Ready</div>
        <ul>
            <li><code>GET /api/networth</code> &mdash; full dataset</li>
            <li><code>GET /api/networth/latest</code> &mdash; most recent snapshot</li>
            <li><code>GET /api/networth/summary</code> &mdash; dashboard summary</li>
            <li><code>GET /api/networth/range?start=&amp;end=</code> &mdash; date range</li>
            <li><code>GET /api/networth/series?field=</code> &mdash; chart series</li>
            <li><code>GET /api/networth/projections?years=</code> &mdash; retirement outlook</li>
        </ul>
    </div>
</body>
</html>
`

// Landing handles GET / with a small status page.
func Landing(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(landingHTML))
}

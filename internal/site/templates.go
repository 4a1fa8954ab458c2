package site

// pageTemplate is the Go html/template for the dashboard page. The ids
// mainTable, detailTable and chart are what script.js binds to.
const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}}</title>
  <link rel="stylesheet" href="{{.BasePath}}style.css">
</head>
<body>
  <main class="content">
    <h1>{{.Title}}</h1>
    {{if .Notes}}<section class="notes">{{.Notes}}</section>{{end}}
    <table id="mainTable">
      <thead>
        <tr>{{range .Columns}}<th data-column="{{.Key}}">{{.Label}}</th>{{end}}</tr>
      </thead>
      <tbody>
{{.Fragment.MainRows}}      </tbody>
    </table>
    <table id="detailTable"{{if not .Fragment.DetailVisible}} style="display:none"{{end}}>
      <thead>
        <tr><th>Job Title</th><th>Count</th></tr>
      </thead>
      <tbody>
{{.Fragment.DetailRows}}      </tbody>
    </table>
    <div id="chart">{{.ChartSVG}}</div>
  </main>
  <script src="{{.BasePath}}script.js"></script>
</body>
</html>`

// cssContent is the stylesheet for the dashboard page.
const cssContent = `:root {
  --bg: #ffffff;
  --text: #212529;
  --border: #dee2e6;
  --accent: #4682b4;
  --table-stripe: #f8f9fa;
}

body {
  margin: 0;
  font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif;
  background: var(--bg);
  color: var(--text);
}

.content {
  max-width: 900px;
  margin: 0 auto;
  padding: 24px;
}

table {
  border-collapse: collapse;
  margin-bottom: 24px;
  min-width: 420px;
}

th, td {
  border: 1px solid var(--border);
  padding: 6px 12px;
  text-align: left;
}

#mainTable th {
  cursor: pointer;
  user-select: none;
}

#mainTable th:hover {
  color: var(--accent);
}

#mainTable tbody tr {
  cursor: pointer;
}

tbody tr:nth-child(even) {
  background: var(--table-stripe);
}
`

// jsContent installs the single delegated click listener on #mainTable.
// Events go over the WebSocket when it is open and fall back to the REST
// endpoints otherwise. On file:// both are unavailable and clicks do nothing.
const jsContent = `(function () {
  var table = document.getElementById('mainTable');
  var mainBody = table.querySelector('tbody');
  var detail = document.getElementById('detailTable');
  var detailBody = detail.querySelector('tbody');
  var online = location.protocol === 'http:' || location.protocol === 'https:';
  var socket = null;

  function apply(frag) {
    mainBody.innerHTML = frag.main_rows;
    detailBody.innerHTML = frag.detail_rows;
    detail.style.display = frag.detail_visible ? 'table' : 'none';
  }

  function connect() {
    var scheme = location.protocol === 'https:' ? 'wss://' : 'ws://';
    socket = new WebSocket(scheme + location.host + '/ws/table');
    socket.onmessage = function (e) { apply(JSON.parse(e.data)); };
    socket.onclose = function () { socket = null; };
  }

  function post(path) {
    fetch(path, { method: 'POST' })
      .then(function (r) { return r.ok ? r.json() : null; })
      .then(function (frag) { if (frag && frag.found !== false) { apply(frag); } });
  }

  function send(ev) {
    if (socket && socket.readyState === WebSocket.OPEN) {
      socket.send(JSON.stringify(ev));
    } else if (ev.target === 'header') {
      post('/api/table/sort/' + ev.column);
    } else {
      post('/api/table/detail/' + ev.year);
    }
  }

  table.addEventListener('click', function (e) {
    if (!online) { return; }
    if (e.target.tagName === 'TH') {
      var column = Array.prototype.indexOf.call(e.target.parentNode.children, e.target);
      send({ target: 'header', column: column });
    } else if (e.target.tagName === 'TD') {
      send({ target: 'cell', year: parseInt(e.target.parentElement.dataset.year, 10) });
    }
  });

  if (online) { connect(); }
})();
`
